package dto

// ListParams is a parsed list query. Filters hold typed values keyed by column.
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]interface{}
}

func (p ListParams) Offset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}
