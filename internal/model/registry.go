package model

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&RetiredSlug{},
		&Company{},
		&Product{},
		&Service{},
		&Partner{},
		&Client{},
		&News{},
		&Event{},
		&Career{},
		&Value{},
		&Contact{},
	}
}
