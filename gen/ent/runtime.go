// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cardvault/cardvault/db/ent/schema"
	"github.com/cardvault/cardvault/gen/ent/contact"
	"github.com/cardvault/cardvault/gen/ent/scanjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[2].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = contactDescName.Validators[0].(func(string) error)
	// contactDescEmail is the schema descriptor for email field.
	contactDescEmail := contactFields[5].Descriptor()
	// contact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contact.EmailValidator = contactDescEmail.Validators[0].(func(string) error)
	// contactDescScanSource is the schema descriptor for scan_source field.
	contactDescScanSource := contactFields[11].Descriptor()
	// contact.DefaultScanSource holds the default value on creation for the scan_source field.
	contact.DefaultScanSource = contactDescScanSource.Default.(string)
	// contact.ScanSourceValidator is a validator for the "scan_source" field. It is called by the builders before save.
	contact.ScanSourceValidator = contactDescScanSource.Validators[0].(func(string) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[12].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[13].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescSource is the schema descriptor for source field.
	scanjobDescSource := scanjobFields[4].Descriptor()
	// scanjob.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	scanjob.SourceValidator = func() func(string) error {
		validators := scanjobDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[5].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[7].Descriptor()
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescIsDuplicate is the schema descriptor for is_duplicate field.
	scanjobDescIsDuplicate := scanjobFields[10].Descriptor()
	// scanjob.DefaultIsDuplicate holds the default value on creation for the is_duplicate field.
	scanjob.DefaultIsDuplicate = scanjobDescIsDuplicate.Default.(bool)
	// scanjobDescMatchScore is the schema descriptor for match_score field.
	scanjobDescMatchScore := scanjobFields[11].Descriptor()
	// scanjob.DefaultMatchScore holds the default value on creation for the match_score field.
	scanjob.DefaultMatchScore = scanjobDescMatchScore.Default.(int)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
