// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cardvault/cardvault/gen/ent/contact"
	"github.com/cardvault/cardvault/gen/ent/predicate"
	"github.com/cardvault/cardvault/gen/ent/scanjob"
	"github.com/google/uuid"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ScanJobUpdate) SetOwnerID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableOwnerID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ScanJobUpdate) SetContactID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableContactID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *ScanJobUpdate) ClearContactID() *ScanJobUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ScanJobUpdate) SetRawText(v string) *ScanJobUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableRawText(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScanJobUpdate) SetSource(v string) *ScanJobUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableSource(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdate) SetStartedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStartedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdate) SetFinishedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFinishedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdate) ClearFinishedAt() *ScanJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdate) SetStatus(v string) *ScanJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStatus(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdate) SetErrorMessage(v string) *ScanJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableErrorMessage(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdate) ClearErrorMessage() *ScanJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ScanJobUpdate) SetExtractedJSON(v json.RawMessage) *ScanJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ScanJobUpdate) AppendExtractedJSON(v json.RawMessage) *ScanJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ScanJobUpdate) ClearExtractedJSON() *ScanJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_u *ScanJobUpdate) SetIsDuplicate(v bool) *ScanJobUpdate {
	_u.mutation.SetIsDuplicate(v)
	return _u
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableIsDuplicate(v *bool) *ScanJobUpdate {
	if v != nil {
		_u.SetIsDuplicate(*v)
	}
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *ScanJobUpdate) SetMatchScore(v int) *ScanJobUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableMatchScore(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *ScanJobUpdate) AddMatchScore(v int) *ScanJobUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetMatchedContactID sets the "matched_contact_id" field.
func (_u *ScanJobUpdate) SetMatchedContactID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetMatchedContactID(v)
	return _u
}

// SetNillableMatchedContactID sets the "matched_contact_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableMatchedContactID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetMatchedContactID(*v)
	}
	return _u
}

// ClearMatchedContactID clears the value of the "matched_contact_id" field.
func (_u *ScanJobUpdate) ClearMatchedContactID() *ScanJobUpdate {
	_u.mutation.ClearMatchedContactID()
	return _u
}

// SetMatchReasons sets the "match_reasons" field.
func (_u *ScanJobUpdate) SetMatchReasons(v []string) *ScanJobUpdate {
	_u.mutation.SetMatchReasons(v)
	return _u
}

// AppendMatchReasons appends value to the "match_reasons" field.
func (_u *ScanJobUpdate) AppendMatchReasons(v []string) *ScanJobUpdate {
	_u.mutation.AppendMatchReasons(v)
	return _u
}

// ClearMatchReasons clears the value of the "match_reasons" field.
func (_u *ScanJobUpdate) ClearMatchReasons() *ScanJobUpdate {
	_u.mutation.ClearMatchReasons()
	return _u
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *ScanJobUpdate) SetContact(v *Contact) *ScanJobUpdate {
	return _u.SetContactID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdate) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *ScanJobUpdate) ClearContact() *ScanJobUpdate {
	_u.mutation.ClearContact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := scanjob.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScanJob.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(scanjob.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scanjob.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(scanjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDuplicate(); ok {
		_spec.SetField(scanjob.FieldIsDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(scanjob.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(scanjob.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchedContactID(); ok {
		_spec.SetField(scanjob.FieldMatchedContactID, field.TypeUUID, value)
	}
	if _u.mutation.MatchedContactIDCleared() {
		_spec.ClearField(scanjob.FieldMatchedContactID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MatchReasons(); ok {
		_spec.SetField(scanjob.FieldMatchReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldMatchReasons, value)
		})
	}
	if _u.mutation.MatchReasonsCleared() {
		_spec.ClearField(scanjob.FieldMatchReasons, field.TypeJSON)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.ContactTable,
			Columns: []string{scanjob.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.ContactTable,
			Columns: []string{scanjob.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ScanJobUpdateOne) SetOwnerID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ScanJobUpdateOne) SetContactID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableContactID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *ScanJobUpdateOne) ClearContactID() *ScanJobUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ScanJobUpdateOne) SetRawText(v string) *ScanJobUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableRawText(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScanJobUpdateOne) SetSource(v string) *ScanJobUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableSource(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdateOne) SetStartedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStartedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdateOne) SetFinishedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdateOne) ClearFinishedAt() *ScanJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdateOne) SetStatus(v string) *ScanJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStatus(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdateOne) SetErrorMessage(v string) *ScanJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableErrorMessage(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdateOne) ClearErrorMessage() *ScanJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ScanJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ScanJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ScanJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ScanJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ScanJobUpdateOne) ClearExtractedJSON() *ScanJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_u *ScanJobUpdateOne) SetIsDuplicate(v bool) *ScanJobUpdateOne {
	_u.mutation.SetIsDuplicate(v)
	return _u
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableIsDuplicate(v *bool) *ScanJobUpdateOne {
	if v != nil {
		_u.SetIsDuplicate(*v)
	}
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *ScanJobUpdateOne) SetMatchScore(v int) *ScanJobUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableMatchScore(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *ScanJobUpdateOne) AddMatchScore(v int) *ScanJobUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetMatchedContactID sets the "matched_contact_id" field.
func (_u *ScanJobUpdateOne) SetMatchedContactID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetMatchedContactID(v)
	return _u
}

// SetNillableMatchedContactID sets the "matched_contact_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableMatchedContactID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetMatchedContactID(*v)
	}
	return _u
}

// ClearMatchedContactID clears the value of the "matched_contact_id" field.
func (_u *ScanJobUpdateOne) ClearMatchedContactID() *ScanJobUpdateOne {
	_u.mutation.ClearMatchedContactID()
	return _u
}

// SetMatchReasons sets the "match_reasons" field.
func (_u *ScanJobUpdateOne) SetMatchReasons(v []string) *ScanJobUpdateOne {
	_u.mutation.SetMatchReasons(v)
	return _u
}

// AppendMatchReasons appends value to the "match_reasons" field.
func (_u *ScanJobUpdateOne) AppendMatchReasons(v []string) *ScanJobUpdateOne {
	_u.mutation.AppendMatchReasons(v)
	return _u
}

// ClearMatchReasons clears the value of the "match_reasons" field.
func (_u *ScanJobUpdateOne) ClearMatchReasons() *ScanJobUpdateOne {
	_u.mutation.ClearMatchReasons()
	return _u
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *ScanJobUpdateOne) SetContact(v *Contact) *ScanJobUpdateOne {
	return _u.SetContactID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *ScanJobUpdateOne) ClearContact() *ScanJobUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanJob entity.
func (_u *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := scanjob.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScanJob.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(scanjob.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scanjob.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(scanjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDuplicate(); ok {
		_spec.SetField(scanjob.FieldIsDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(scanjob.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(scanjob.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchedContactID(); ok {
		_spec.SetField(scanjob.FieldMatchedContactID, field.TypeUUID, value)
	}
	if _u.mutation.MatchedContactIDCleared() {
		_spec.ClearField(scanjob.FieldMatchedContactID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MatchReasons(); ok {
		_spec.SetField(scanjob.FieldMatchReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldMatchReasons, value)
		})
	}
	if _u.mutation.MatchReasonsCleared() {
		_spec.ClearField(scanjob.FieldMatchReasons, field.TypeJSON)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.ContactTable,
			Columns: []string{scanjob.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.ContactTable,
			Columns: []string{scanjob.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
