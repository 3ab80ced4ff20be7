package memory

import (
	"reflect"
	"strings"
	"time"

	"company-profile-be/internal/repository/contract"
)

// normalize dereferences pointers and widens numbers so values read from
// models compare against filter values of any integer type.
func normalize(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if t, ok := rv.Interface().(time.Time); ok {
		return t
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return rv.Interface()
}

// compare orders two normalized values. nil sorts after everything, as
// NULLs do in an ascending PostgreSQL sort. ok is false for incomparable types.
func compare(a, b interface{}) (c int, ok bool) {
	switch {
	case a == nil && b == nil:
		return 0, true
	case a == nil:
		return 1, true
	case b == nil:
		return -1, true
	}

	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return cmpOrdered(x, y), true
		case float64:
			return cmpOrdered(float64(x), y), true
		}
	case float64:
		switch y := b.(type) {
		case float64:
			return cmpOrdered(x, y), true
		case int64:
			return cmpOrdered(x, float64(y)), true
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), true
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0, true
			case !x:
				return -1, true
			default:
				return 1, true
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), true
		}
	}
	return 0, false
}

func cmpOrdered[T int64 | float64](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func equal(a, b interface{}) bool {
	a, b = normalize(a), normalize(b)
	if c, ok := compare(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

// matches evaluates one filter against a column value with SQL semantics:
// NULL never satisfies a comparison.
func matches(value interface{}, f contract.Filter) bool {
	v := normalize(value)
	switch f.Op {
	case contract.OpIn:
		if v == nil {
			return false
		}
		for _, candidate := range toSlice(f.Value) {
			if equal(v, candidate) {
				return true
			}
		}
		return false
	case contract.OpNe:
		if v == nil {
			return false
		}
		return !equal(v, f.Value)
	case contract.OpLt:
		other := normalize(f.Value)
		if v == nil || other == nil {
			return false
		}
		c, ok := compare(v, other)
		return ok && c < 0
	default:
		if v == nil {
			return false
		}
		return equal(v, f.Value)
	}
}

func toSlice(v interface{}) []interface{} {
	if s, ok := v.([]interface{}); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return []interface{}{v}
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func containsFold(value interface{}, term string) bool {
	s, ok := normalize(value).(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), term)
}
