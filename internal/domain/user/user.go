// Package user holds the operators who create dielines, cartons and assignments.
package user

import (
	"errors"
	"fmt"
	"time"

	vo "github.com/cartonworks/stockline/internal/domain/user/valueobjects"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/id"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("role must be admin or employee")
)

type User struct {
	id        uint
	sid       string
	name      vo.DisplayName
	email     vo.Email
	role      Role
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email string, role Role) (*User, error) {
	displayName, err := vo.NewDisplayName(name)
	if err != nil {
		return nil, err
	}
	addr, err := vo.NewEmail(email)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleEmployee
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	sid, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		sid:       sid,
		name:      displayName,
		email:     addr,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence.
func ReconstructUser(id uint, sid, name, email string, role Role, createdAt, updatedAt time.Time) *User {
	displayName, _ := vo.NewDisplayName(name)
	addr, _ := vo.NewEmail(email)
	return &User{
		id:        id,
		sid:       sid,
		name:      displayName,
		email:     addr,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) SID() string          { return u.sid }
func (u *User) Name() string         { return u.name.String() }
func (u *User) Initials() string     { return u.name.Initials() }
func (u *User) Email() string        { return u.email.String() }
func (u *User) Role() Role           { return u.role }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) {
	u.id = id
}

// Rename updates the display name and role.
func (u *User) Rename(name string, role Role) error {
	displayName, err := vo.NewDisplayName(name)
	if err != nil {
		return err
	}
	if !role.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	u.name = displayName
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeEmail replaces the address. Uniqueness is checked by the caller.
func (u *User) ChangeEmail(email string) error {
	addr, err := vo.NewEmail(email)
	if err != nil {
		return err
	}
	u.email = addr
	u.updatedAt = biztime.NowUTC()
	return nil
}
