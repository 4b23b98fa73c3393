package dto

import (
	"time"

	"github.com/cartonworks/stockline/internal/domain/user"
)

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Initials  string    `json:"initials"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.SID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Initials:  u.Initials(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	result := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}
