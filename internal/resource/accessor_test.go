package resource

import (
	"testing"
	"time"

	"company-profile-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAccessorSetConverts(t *testing.T) {
	acc := MustAccessor[model.Career]()
	c := &model.Career{}
	now := time.Now()

	tests := []struct {
		name   string
		column string
		value  interface{}
		check  func(t *testing.T)
	}{
		{"string", "title", "Go Engineer", func(t *testing.T) { assert.Equal(t, "Go Engineer", c.Title) }},
		{"int to int64", "views", 3, func(t *testing.T) { assert.Equal(t, int64(3), c.Views) }},
		{"value to pointer", "application_deadline", now, func(t *testing.T) {
			require.NotNil(t, c.ApplicationDeadline)
			assert.True(t, now.Equal(*c.ApplicationDeadline))
		}},
		{"nil clears pointer", "application_deadline", nil, func(t *testing.T) { assert.Nil(t, c.ApplicationDeadline) }},
		{"slice to json slice", "benefits", []string{"remote"}, func(t *testing.T) {
			assert.Equal(t, datatypes.JSONSlice[string]{"remote"}, c.Benefits)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, acc.Set(c, tt.column, tt.value))
			tt.check(t)
		})
	}
}

func TestAccessorRejectsBadValues(t *testing.T) {
	acc := MustAccessor[model.Career]()
	c := &model.Career{}

	assert.Error(t, acc.Set(c, "views", "ten"))
	assert.Error(t, acc.Set(c, "title", 10), "int must not become a rune string")
	assert.Error(t, acc.Set(c, "nope", 1))
}

func TestAccessorReads(t *testing.T) {
	acc := MustAccessor[model.Event]()
	e := &model.Event{Id: 9, Title: "Summit", Gallery: datatypes.JSONSlice[string]{"/a.png", "/b.png"}}

	assert.Equal(t, int64(9), acc.ID(e))
	assert.Equal(t, "Summit", acc.String(e, "title"))
	assert.Equal(t, "", acc.String(e, "event_date"))
	assert.Equal(t, []string{"/a.png", "/b.png"}, acc.Strings(e, "gallery"))
	assert.Equal(t, "events", acc.Table())
	assert.True(t, acc.Has("registration_url"))
}

func TestAccessorUniqueSetsAndAutoTime(t *testing.T) {
	assert.Equal(t, [][]string{{"slug"}}, MustAccessor[model.Product]().UniqueSets())
	assert.Equal(t, [][]string{{"resource", "slug"}}, MustAccessor[model.RetiredSlug]().UniqueSets())

	onCreate, onUpdate := MustAccessor[model.Contact]().AutoTimeColumns()
	assert.ElementsMatch(t, []string{"created_at", "updated_at"}, onCreate)
	assert.Equal(t, []string{"updated_at"}, onUpdate)
}

func TestStatusMachine(t *testing.T) {
	strict := Contacts.Status
	assert.True(t, strict.Allowed("new", "read"))
	assert.True(t, strict.Allowed("read", "read"))
	assert.True(t, strict.Allowed("replied", "closed"))
	assert.False(t, strict.Allowed("closed", "new"))
	assert.False(t, strict.Allowed("replied", "read"))
	assert.False(t, strict.Allowed("new", "archived"))

	permissive := Careers.Status
	assert.True(t, permissive.Allowed("closed", "open"))
	assert.False(t, permissive.Allowed("open", "filled"))
}

func TestDefinitionsAreConsistent(t *testing.T) {
	paths := map[string]bool{}
	for _, def := range All() {
		assert.False(t, paths[def.Path], "duplicate path %s", def.Path)
		paths[def.Path] = true
		assert.NotEmpty(t, def.WriteRoles, def.Name)
		assert.NotEmpty(t, def.DefaultSort, def.Name)
	}
	assert.Len(t, paths, 10)
}
