package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

// FromCreate always starts a submission as new.
func (m *ContactMapper) FromCreate(req *dto.CreateContactRequest) *model.Contact {
	return &model.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Company: strings.TrimSpace(req.Company),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  model.ContactStatusNew,
	}
}

func (m *ContactMapper) ToUpdates(req *dto.UpdateContactRequest) map[string]interface{} {
	u := updates{}
	set(u, "notes", req.Notes)
	return u
}
