package specification

import (
	"company-profile-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FilterBy Generic Filter
type FilterBy struct {
	Filter contract.Filter
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	col := clause.Column{Name: s.Filter.Column}
	switch s.Filter.Op {
	case contract.OpNe:
		return db.Where(clause.Neq{Column: col, Value: s.Filter.Value})
	case contract.OpLt:
		return db.Where(clause.Lt{Column: col, Value: s.Filter.Value})
	case contract.OpIn:
		values, _ := s.Filter.Value.([]interface{})
		return db.Where(clause.IN{Column: col, Values: values})
	default:
		return db.Where(clause.Eq{Column: col, Value: s.Filter.Value})
	}
}

func Filter(f contract.Filter) Specification {
	return FilterBy{Filter: f}
}
