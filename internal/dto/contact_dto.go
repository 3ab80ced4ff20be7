package dto

// CreateContactRequest is the public contact form.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=50"`
	Company string `json:"company" validate:"max=200"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateContactRequest edits internal notes; status has its own endpoint.
type UpdateContactRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=5000"`
}
