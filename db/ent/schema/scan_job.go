package schema

import (
	"encoding/json"
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/cardvault/cardvault/constants"
	"github.com/cardvault/cardvault/db/ent/schema/utils"
)

var errInvalidEmail = errors.New("invalid email address")

type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_jobs"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}),
		// set once the reviewed scan is saved as a contact
		field.UUID("contact_id", uuid.UUID{}).Optional().Nillable(),
		field.String("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.SourceCamera),
				string(constants.SourceUpload),
				string(constants.SourceManual),
			)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").NotEmpty(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.Bool("is_duplicate").Default(false),
		field.Int("match_score").Default(0),
		field.UUID("matched_contact_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("match_reasons", []string{}).Optional(),
	}
}

func (ScanJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("scans").
			Field("contact_id").
			Unique(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status", "started_at"),
		index.Fields("contact_id"),
	}
}
