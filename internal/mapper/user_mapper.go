package mapper

import (
	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

func ToUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		Id:          u.Id,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(users []*model.User) []dto.UserResponse {
	res := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserResponse(u))
	}
	return res
}
