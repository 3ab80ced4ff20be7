package specification

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchQuery matches rows where any column contains Term (ILIKE, OR-combined).
type SearchQuery struct {
	Term    string
	Columns []string
}

func (s SearchQuery) Apply(db *gorm.DB) *gorm.DB {
	term := strings.TrimSpace(s.Term)
	if term == "" || len(s.Columns) == 0 {
		return db
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"
	exprs := make([]clause.Expression, 0, len(s.Columns))
	for _, col := range s.Columns {
		exprs = append(exprs, clause.Expr{
			SQL:  "? ILIKE ?",
			Vars: []interface{}{clause.Column{Name: col}, pattern},
		})
	}
	return db.Where(clause.Or(exprs...))
}
