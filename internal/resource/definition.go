// Package resource describes each content type served by the generic
// repository, service and controller.
package resource

import (
	"time"

	"company-profile-be/internal/repository/contract"
)

type FilterKind int

const (
	FilterString FilterKind = iota
	FilterBool
	FilterInt
)

// FileField binds an uploaded form field to a model column.
type FileField struct {
	FormField string
	Column    string
	Folder    string
	// Multiple stores a list of URLs ([]string column) instead of one.
	Multiple bool
}

// StatusMachine describes the enum column changed by the status endpoint.
type StatusMachine struct {
	Column string
	Values []string
	// Transitions lists the allowed next states per state. Nil allows any
	// move between known values.
	Transitions map[string][]string
	// OnEnter returns extra columns written together with the new status.
	OnEnter func(status, actor string, now time.Time) map[string]interface{}
}

func (s *StatusMachine) Known(status string) bool {
	for _, v := range s.Values {
		if v == status {
			return true
		}
	}
	return false
}

// Allowed reports whether from -> to is a legal move. Staying in place is
// always allowed.
func (s *StatusMachine) Allowed(from, to string) bool {
	if !s.Known(to) {
		return false
	}
	if from == to || s.Transitions == nil {
		return true
	}
	for _, next := range s.Transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Action is a narrow update bound to PATCH /:id/:name.
type Action struct {
	Message string
	Values  func(now time.Time) map[string]interface{}
}

type Definition struct {
	// Name is the singular label used in messages ("Product").
	Name string
	// Path is the plural URL segment ("products").
	Path string

	// SlugSource is the column a slug is derived from when none is given.
	// Empty when the type has no slug.
	SlugSource    string
	SearchColumns []string
	Filters       map[string]FilterKind
	// PublicFilters restrict what the public surface may see.
	PublicFilters []contract.Filter
	DefaultSort   []contract.Sort
	ViewColumn    string
	Files         []FileField
	Status        *StatusMachine
	Actions       map[string]Action

	// PublicRead exposes list and lookups without authentication.
	PublicRead bool
	// PublicCreate exposes create without authentication (contact form).
	PublicCreate bool
	// WriteRoles may create, update and change status; DeleteRoles may delete.
	WriteRoles  []string
	DeleteRoles []string
}

func (d *Definition) HasSlug() bool {
	return d.SlugSource != ""
}

func (d *Definition) FileField(form string) (FileField, bool) {
	for _, f := range d.Files {
		if f.FormField == form {
			return f, true
		}
	}
	return FileField{}, false
}

// CacheKey prefixes every cached entry of this resource.
func (d *Definition) CacheKey() string {
	return "public:" + d.Path + ":"
}
