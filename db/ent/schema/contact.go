package schema

import (
	"encoding/json"
	"regexp"
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

var reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Contact struct{ ent.Schema }

func (Contact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contacts"},
	}
}

func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("company").Optional(),
		field.String("phone").Optional(),
		field.String("email").Optional().
			Validate(func(s string) error {
				if s == "" || reEmail.MatchString(s) {
					return nil
				}
				return errInvalidEmail
			}),
		field.String("address").Optional(),
		field.String("website").Optional(),
		field.JSON("tags", []string{}).Optional(),
		field.String("notes").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("ocr_confidence", json.RawMessage{}).Optional(),
		field.String("scan_source").
			Default(string(constants.SourceManual)).
			Validate(utils.EnumValidator(
				string(constants.SourceCamera),
				string(constants.SourceUpload),
				string(constants.SourceManual),
			)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contact -> MANY scan jobs that produced or matched it
		edge.To("scans", ScanJob.Type),
	}
}

func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("owner_id", "email"),
	}
}
