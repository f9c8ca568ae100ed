package model

// Record is one animal-shelter intake/outcome document.
// Records are schema-less: any field the store returns is kept, including the
// store-assigned "_id".
type Record map[string]any

// Filter selects records for read, update and delete. It uses the document store's
// query form; an empty or nil Filter matches every record.
type Filter map[string]any

// Projection lists fields to include (1) or exclude (0) in returned records.
// A nil Projection returns all fields.
type Projection map[string]any

// Field names the rescue-type query relies on.
const (
	FieldAnimalType     = "animal_type"
	FieldBreed          = "breed"
	FieldSexUponOutcome = "sex_upon_outcome"
	FieldAgeInWeeks     = "age_upon_outcome_in_weeks"
)

// ProjectionOf builds an inclusion projection for the given fields.
// It returns nil when no fields are given.
func ProjectionOf(fields ...string) Projection {
	if len(fields) == 0 {
		return nil
	}
	p := make(Projection, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		p[f] = 1
	}
	if len(p) == 0 {
		return nil
	}
	return p
}
