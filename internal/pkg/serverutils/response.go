// FILE: internal/pkg/serverutils/response.go
package serverutils

// BaseResponse is the success envelope; the HTTP status carries the code.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// PaginatedResponse is the list envelope carrying paging metadata.
type PaginatedResponse[T any] struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Data        []T    `json:"data"`
	Count       int64  `json:"count"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

type ErrorBody struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) *BaseResponse[T] {
	return &BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func NewPaginatedResponse[T any](message string, data []T, count int64, page, limit int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Success:     true,
		Message:     message,
		Data:        data,
		Count:       count,
		TotalPages:  TotalPages(count, limit),
		CurrentPage: page,
	}
}

func ErrorResponse(code int, message string) *ErrorBody {
	return &ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// TotalPages is ceil(count/limit), 0 when there is nothing to page.
func TotalPages(count int64, limit int) int {
	if limit <= 0 || count <= 0 {
		return 0
	}
	return int((count + int64(limit) - 1) / int64(limit))
}

func CreatedResponse[T any](message string, data T) *BaseResponse[T] {
	return &BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}
