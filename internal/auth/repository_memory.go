package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type InMemoryStaffRepository struct {
	mu    sync.RWMutex
	staff map[string]*Staff
}

func NewInMemoryStaffRepository() *InMemoryStaffRepository {
	return &InMemoryStaffRepository{
		staff: make(map[string]*Staff),
	}
}

func (r *InMemoryStaffRepository) Save(ctx context.Context, s *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(s.Email)
	if _, exists := r.staff[key]; exists {
		return ErrEmailTaken
	}

	// Generate UUID if not already set
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	cp := *s
	r.staff[key] = &cp
	return nil
}

func (r *InMemoryStaffRepository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.staff[strings.ToLower(email)]
	if !ok {
		return nil, ErrStaffNotFound
	}
	cp := *s
	return &cp, nil
}
