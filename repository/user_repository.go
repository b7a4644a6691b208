package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"station-attendance/models"
	"station-attendance/store"
)

type UserRepository struct {
	mu    sync.Mutex
	users *store.Collection[models.User]
	now   func() time.Time
}

func NewUserRepository(backend store.Backend) *UserRepository {
	return &UserRepository{
		users: store.NewCollection[models.User](backend, store.UsersKey),
		now:   time.Now,
	}
}

func (r *UserRepository) GetAll(ctx context.Context) []models.User {
	return r.users.Load(ctx)
}

// FindUserByID returns nil when no user has the given opaque id.
func (r *UserRepository) FindUserByID(ctx context.Context, id string) *models.User {
	for _, u := range r.users.Load(ctx) {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, payload models.UserCreatePayload) (*models.User, error) {
	role := payload.Role
	if role == "" {
		role = models.RoleEmployee
	}

	user := models.User{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(payload.UserID),
		UserName:  strings.TrimSpace(payload.UserName),
		Email:     strings.TrimSpace(payload.Email),
		Role:      role,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users := append(r.users.Load(ctx), user)
	if err := r.users.Replace(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes the user but keeps their attendance records.
func (r *UserRepository) DeleteUser(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.users.Load(ctx)
	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}

	if err := r.users.Replace(ctx, kept); err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return true, nil
}
