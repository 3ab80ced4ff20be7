package resource

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

var schemaCache = &sync.Map{}

// Accessor reads and writes model columns by their database name, using
// the same schema GORM derives for the table.
type Accessor[M any] struct {
	schema *schema.Schema
}

func NewAccessor[M any]() (*Accessor[M], error) {
	s, err := schema.Parse(new(M), schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &Accessor[M]{schema: s}, nil
}

func MustAccessor[M any]() *Accessor[M] {
	a, err := NewAccessor[M]()
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Accessor[M]) Table() string {
	return a.schema.Table
}

func (a *Accessor[M]) Has(column string) bool {
	_, ok := a.schema.FieldsByDBName[column]
	return ok
}

func (a *Accessor[M]) Columns() []string {
	return append([]string(nil), a.schema.DBNames...)
}

// AutoTimeColumns returns the columns stamped on insert and on update.
func (a *Accessor[M]) AutoTimeColumns() (onCreate, onUpdate []string) {
	for _, f := range a.schema.Fields {
		if f.DBName == "" {
			continue
		}
		if f.AutoCreateTime > 0 {
			onCreate = append(onCreate, f.DBName)
		}
		if f.AutoUpdateTime > 0 {
			onCreate = append(onCreate, f.DBName)
			onUpdate = append(onUpdate, f.DBName)
		}
	}
	return onCreate, onUpdate
}

// UniqueSets returns the column groups that carry a unique index.
func (a *Accessor[M]) UniqueSets() [][]string {
	groups := map[string][]string{}
	for _, f := range a.schema.Fields {
		if f.DBName == "" {
			continue
		}
		if _, ok := f.TagSettings["UNIQUE"]; ok {
			groups[f.DBName] = append(groups[f.DBName], f.DBName)
			continue
		}
		name, ok := f.TagSettings["UNIQUEINDEX"]
		if !ok {
			continue
		}
		if name == "" || strings.EqualFold(name, "UNIQUEINDEX") {
			name = f.DBName
		}
		groups[name] = append(groups[name], f.DBName)
	}

	names := make([]string, 0, len(groups))
	for n := range groups {
		names = append(names, n)
	}
	sort.Strings(names)

	sets := make([][]string, 0, len(names))
	for _, n := range names {
		sets = append(sets, groups[n])
	}
	return sets
}

func (a *Accessor[M]) field(m *M, column string) (reflect.Value, error) {
	f, ok := a.schema.FieldsByDBName[column]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%s has no column %q", a.schema.Table, column)
	}
	return reflect.ValueOf(m).Elem().FieldByIndex(f.StructField.Index), nil
}

func (a *Accessor[M]) Get(m *M, column string) (interface{}, error) {
	v, err := a.field(m, column)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// String returns the column as a string, "" when unset or not a string.
func (a *Accessor[M]) String(m *M, column string) string {
	v, err := a.field(m, column)
	if err != nil {
		return ""
	}
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.String {
		return ""
	}
	return v.String()
}

func (a *Accessor[M]) Strings(m *M, column string) []string {
	v, err := a.field(m, column)
	if err != nil || v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.String {
		return nil
	}
	out := make([]string, v.Len())
	for i := range out {
		out[i] = v.Index(i).String()
	}
	return out
}

func (a *Accessor[M]) ID(m *M) int64 {
	v, err := a.field(m, "id")
	if err != nil {
		return 0
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	}
	return 0
}

func (a *Accessor[M]) Set(m *M, column string, value interface{}) error {
	v, err := a.field(m, column)
	if err != nil {
		return err
	}
	if err := assign(v, value); err != nil {
		return fmt.Errorf("%s.%s: %w", a.schema.Table, column, err)
	}
	return nil
}

// Apply sets every column in values.
func (a *Accessor[M]) Apply(m *M, values map[string]interface{}) error {
	for column, value := range values {
		if err := a.Set(m, column, value); err != nil {
			return err
		}
	}
	return nil
}

func assign(dst reflect.Value, value interface{}) error {
	if value == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	if src.Kind() == reflect.Ptr {
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		return assign(dst, src.Elem().Interface())
	}

	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		if err := assign(p.Elem(), value); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	}

	if convertible(src, dst.Type()) {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, dst.Type())
}

// convertible excludes conversions Go allows but that change meaning, such
// as int to string.
func convertible(src reflect.Value, to reflect.Type) bool {
	if !src.Type().ConvertibleTo(to) {
		return false
	}
	from := src.Kind()
	switch to.Kind() {
	case reflect.String:
		return from == reflect.String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return isNumber(from)
	case reflect.Slice:
		return from == reflect.Slice
	}
	return from == to.Kind()
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
