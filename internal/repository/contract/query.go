package contract

type Op string

const (
	OpEq Op = "="
	OpNe Op = "!="
	OpLt Op = "<"
	OpIn Op = "IN"
)

type Filter struct {
	Column string
	Op     Op
	Value  interface{}
}

func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

func In(column string, values ...interface{}) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

func Lt(column string, value interface{}) Filter {
	return Filter{Column: column, Op: OpLt, Value: value}
}

// Search matches records where any of Columns contains Term, case-insensitively.
type Search struct {
	Term    string
	Columns []string
}

type Sort struct {
	Column string
	Desc   bool
}

// Query describes a FindMany call. Filters are AND-combined.
// Limit <= 0 returns the full matching set.
type Query struct {
	Filters []Filter
	Search  Search
	Sort    []Sort
	Limit   int
	Offset  int
}
