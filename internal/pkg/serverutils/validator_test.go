package serverutils

import (
	"testing"
	"time"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestFieldNames(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	err := ValidateRequest(dto.CreateProductRequest{
		Slug:           "Bad Slug",
		Price:          &negative,
		Specifications: []model.KeyValue{{Value: "x"}},
	})
	require.Error(t, err)
	require.True(t, apperr.IsValidation(err))

	fields := apperr.From(err).Fields
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must contain only lowercase letters, digits and single hyphens", fields["slug"])
	assert.Equal(t, "must be greater than or equal to 0", fields["price"])
	assert.Equal(t, "is required", fields["specifications[0].key"])
}

func TestValidateRequestPasses(t *testing.T) {
	assert.NoError(t, ValidateRequest(dto.CreateProductRequest{Name: "Widget", Slug: "widget"}))
	assert.NoError(t, ValidateRequest(dto.CreateContactRequest{
		Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Hello",
	}))
}

func TestValidateRequestMessages(t *testing.T) {
	start := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	tests := []struct {
		name  string
		req   interface{}
		field string
		want  string
	}{
		{
			name:  "email",
			req:   dto.CreateContactRequest{Name: "A", Email: "nope", Subject: "s", Message: "m"},
			field: "email",
			want:  "must be a valid email address",
		},
		{
			name:  "oneof",
			req:   dto.CreateEventRequest{Title: "T", EventDate: start, Status: "postponed"},
			field: "status",
			want:  "must be one of: upcoming, ongoing, completed, cancelled",
		},
		{
			name:  "end before start",
			req:   dto.CreateEventRequest{Title: "T", EventDate: start, EndDate: &before},
			field: "end_date",
			want:  "must not be before EventDate",
		},
		{
			name:  "url",
			req:   dto.CreateEventRequest{Title: "T", EventDate: start, RegistrationUrl: "not a url"},
			field: "registration_url",
			want:  "must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperr.From(err).Fields[tt.field])
		})
	}
}
