package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
)

type Service struct {
	repo   StaffRepository
	tokens *TokenIssuer
	log    logrus.FieldLogger
}

func NewService(repo StaffRepository, tokens *TokenIssuer, log logrus.FieldLogger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		log:    log.WithField("component", "auth"),
	}
}

// CreateStaff hashes the password and stores a new account.
func (s *Service) CreateStaff(ctx context.Context, name, email, password, role string) (*Staff, error) {
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || role == "" {
		return nil, ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &Staff{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.repo.Save(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// EnsureAdmin creates the bootstrap admin account unless it already exists.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.log.Warn("admin credentials not configured, skipping bootstrap")
		return nil
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrStaffNotFound) {
		return err
	}

	if _, err := s.CreateStaff(ctx, "Administrator", email, password, RoleAdmin); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil
		}
		return err
	}

	s.log.WithField("email", email).Info("bootstrap admin created")
	return nil
}

// Login checks the password and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Staff, error) {
	staff, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, ErrStaffNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(staff.ID, staff.Email, staff.Role)
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}
