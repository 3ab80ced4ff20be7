package memory

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/resource"
)

// Table holds the rows of one model. All reads return copies.
type Table[M any] struct {
	mu     sync.RWMutex
	rows   map[int64]*M
	nextID int64
	acc    *resource.Accessor[M]
	unique [][]string

	createdCols []string
	updatedCols []string
}

func NewTable[M any]() *Table[M] {
	acc := resource.MustAccessor[M]()
	onCreate, onUpdate := acc.AutoTimeColumns()
	return &Table[M]{
		rows:        make(map[int64]*M),
		acc:         acc,
		unique:      acc.UniqueSets(),
		createdCols: onCreate,
		updatedCols: onUpdate,
	}
}

// clone copies the row and every top-level slice and pointer field, so a
// caller mutating a returned record never reaches the stored one.
func clone[M any](m *M) *M {
	cp := *m
	v := reflect.ValueOf(&cp).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.Slice:
			if f.IsNil() {
				continue
			}
			s := reflect.MakeSlice(f.Type(), f.Len(), f.Len())
			reflect.Copy(s, f)
			f.Set(s)
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			p := reflect.New(f.Type().Elem())
			p.Elem().Set(f.Elem())
			f.Set(p)
		}
	}
	return &cp
}

func (t *Table[M]) Get(id int64) *M {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if row, ok := t.rows[id]; ok {
		return clone(row)
	}
	return nil
}

// FindFirst returns the first row, by id, satisfying every filter.
func (t *Table[M]) FindFirst(filters ...contract.Filter) *M {
	_, rows := t.Select(contract.Query{Filters: filters, Limit: 1})
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func (t *Table[M]) Select(q contract.Query) (int64, []*M) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(q.Search.Term))
	matched := make([]*M, 0)
	for _, row := range t.rows {
		if t.matchesAll(row, q.Filters) && t.matchesSearch(row, term, q.Search.Columns) {
			matched = append(matched, row)
		}
	}

	t.sortRows(matched, q.Sort)

	total := int64(len(matched))
	start, end := 0, len(matched)
	if q.Limit > 0 {
		start = min(max(q.Offset, 0), len(matched))
		end = min(start+q.Limit, len(matched))
	}

	page := make([]*M, 0, end-start)
	for _, row := range matched[start:end] {
		page = append(page, clone(row))
	}
	return total, page
}

func (t *Table[M]) matchesAll(row *M, filters []contract.Filter) bool {
	for _, f := range filters {
		v, err := t.acc.Get(row, f.Column)
		if err != nil || !matches(v, f) {
			return false
		}
	}
	return true
}

func (t *Table[M]) matchesSearch(row *M, term string, columns []string) bool {
	if term == "" || len(columns) == 0 {
		return true
	}
	for _, col := range columns {
		if v, err := t.acc.Get(row, col); err == nil && containsFold(v, term) {
			return true
		}
	}
	return false
}

func (t *Table[M]) sortRows(rows []*M, sorts []contract.Sort) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, s := range sorts {
			a, _ := t.acc.Get(rows[i], s.Column)
			b, _ := t.acc.Get(rows[j], s.Column)
			c, ok := compare(normalize(a), normalize(b))
			if !ok || c == 0 {
				continue
			}
			if s.Desc {
				return c > 0
			}
			return c < 0
		}
		return t.acc.ID(rows[i]) < t.acc.ID(rows[j])
	})
}

// checkUnique must be called with the write lock held.
func (t *Table[M]) checkUnique(candidate *M, selfID int64) error {
	for _, set := range t.unique {
		for id, row := range t.rows {
			if id == selfID {
				continue
			}
			same := true
			for _, col := range set {
				a, _ := t.acc.Get(candidate, col)
				b, _ := t.acc.Get(row, col)
				if !equal(a, b) {
					same = false
					break
				}
			}
			if same {
				column := set[len(set)-1]
				return apperr.Constraint(column, fmt.Sprintf("%s already exists", column))
			}
		}
	}
	return nil
}

func (t *Table[M]) stamp(m *M, columns []string) {
	now := time.Now()
	for _, col := range columns {
		_ = t.acc.Set(m, col, now)
	}
}

func (t *Table[M]) Insert(m *M) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := clone(m)
	t.stamp(row, t.createdCols)
	if err := t.checkUnique(row, 0); err != nil {
		return err
	}

	t.nextID++
	if err := t.acc.Set(row, "id", t.nextID); err != nil {
		t.nextID--
		return err
	}
	t.rows[t.nextID] = row
	*m = *clone(row)
	return nil
}

func (t *Table[M]) Update(id int64, values map[string]interface{}, touch bool) (*M, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.rows[id]
	if !ok {
		return nil, nil
	}

	row := clone(current)
	if err := t.acc.Apply(row, values); err != nil {
		return nil, err
	}
	if err := t.acc.Set(row, "id", id); err != nil {
		return nil, err
	}
	if touch {
		t.stamp(row, t.updatedCols)
	}
	if err := t.checkUnique(row, id); err != nil {
		return nil, err
	}

	t.rows[id] = clone(row)
	return row, nil
}

func (t *Table[M]) Increment(id int64, column string, by int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return false, nil
	}
	v, err := t.acc.Get(row, column)
	if err != nil {
		return false, err
	}
	n, isInt := normalize(v).(int64)
	if !isInt {
		return false, fmt.Errorf("column %q is not an integer", column)
	}
	if err := t.acc.Set(row, column, n+by); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Table[M]) Delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}
