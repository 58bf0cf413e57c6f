package auth

import (
	"context"
	"errors"
)

var (
	ErrStaffNotFound = errors.New("staff account not found")
	ErrEmailTaken    = errors.New("email already exists")
)

// StaffRepository defines the data-access contract.
// Service depends ONLY on this interface.
type StaffRepository interface {
	Save(ctx context.Context, staff *Staff) error
	FindByEmail(ctx context.Context, email string) (*Staff, error)
}
