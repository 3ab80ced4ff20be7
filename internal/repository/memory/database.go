package memory

import (
	"reflect"
	"sync"

	"company-profile-be/internal/model"
)

// Database is the in-process store used with STORE_DRIVER=memory and in tests.
// It has no transactions: writes apply immediately.
type Database struct {
	mu     sync.Mutex
	tables map[reflect.Type]interface{}

	Users        *UserRepository
	RetiredSlugs *Table[model.RetiredSlug]
}

func NewDatabase() *Database {
	return &Database{
		tables:       make(map[reflect.Type]interface{}),
		Users:        NewUserRepository(),
		RetiredSlugs: NewTable[model.RetiredSlug](),
	}
}

// TableOf returns the table for M, creating it on first use.
func TableOf[M any](db *Database) *Table[M] {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := reflect.TypeOf((*M)(nil)).Elem()
	if t, ok := db.tables[key]; ok {
		return t.(*Table[M])
	}
	t := NewTable[M]()
	db.tables[key] = t
	return t
}
