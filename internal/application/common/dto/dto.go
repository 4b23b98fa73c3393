// Package dto holds response shapes shared by several application modules.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/cartonworks/stockline/internal/domain/user"
)

// UserRefDTO is the display form of a user referenced by another record.
type UserRefDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
}

// ToUserRefDTO returns nil for nil, which renders as a "legacy record" in clients.
func ToUserRefDTO(u *user.User) *UserRefDTO {
	if u == nil {
		return nil
	}
	return &UserRefDTO{
		ID:       u.SID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Initials: u.Initials(),
	}
}

// Millimetres renders a dimension for JSON. Values are stored as decimals;
// the float is for display only.
func Millimetres(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
