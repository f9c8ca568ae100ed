package query

import "shelterapi/internal/model"

// Condition is a single field clause of a conjunctive filter.
type Condition struct {
	field string
	expr  any
}

// Filter renders the condition as a standalone filter document.
func (c Condition) Filter() model.Filter {
	return model.Filter{c.field: c.expr}
}

// Eq matches records whose field equals value.
func Eq(field string, value any) Condition {
	return Condition{field: field, expr: value}
}

// In matches records whose field equals any of values.
func In[T any](field string, values ...T) Condition {
	vs := make([]T, len(values))
	copy(vs, values)
	return Condition{field: field, expr: model.Filter{"$in": vs}}
}

// Between matches records whose numeric field lies in [min, max], both ends inclusive.
func Between(field string, min, max int) Condition {
	return Condition{field: field, expr: model.Filter{"$gte": min, "$lte": max}}
}

// And joins conditions into one conjunctive filter.
// With no conditions it returns the match-all filter.
func And(conds ...Condition) model.Filter {
	if len(conds) == 0 {
		return model.Filter{}
	}
	clauses := make([]model.Filter, 0, len(conds))
	for _, c := range conds {
		clauses = append(clauses, c.Filter())
	}
	return model.Filter{"$and": clauses}
}

// MatchAll returns the empty filter, which selects every record.
func MatchAll() model.Filter {
	return model.Filter{}
}
