package repositories

import (
	"context"
	"sort"
	"strings"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) []entities.User
	FindUser(ctx context.Context, id string) (entities.User, error)
	CreateUser(ctx context.Context, user entities.User) error
	UpdateUser(ctx context.Context, id string, mutate func(*entities.User) error) (entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetUsers(ctx context.Context) []entities.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *UserRepository) FindUser(ctx context.Context, id string) (entities.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return entities.User{}, apperrors.NewNotFoundError("user", id)
	}
	return u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) error {
	r.store.mu.Lock()
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			r.store.mu.Unlock()
			return apperrors.NewConflictError("a user with email %q already exists", user.Email)
		}
	}
	r.store.users[user.ID] = user
	r.store.mu.Unlock()

	r.store.publish(ctx, "user", "created", user.ID)
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, mutate func(*entities.User) error) (entities.User, error) {
	r.store.mu.Lock()
	u, ok := r.store.users[id]
	if !ok {
		r.store.mu.Unlock()
		return entities.User{}, apperrors.NewNotFoundError("user", id)
	}
	if err := mutate(&u); err != nil {
		r.store.mu.Unlock()
		return entities.User{}, err
	}
	u.ID = id
	r.store.users[id] = u
	r.store.mu.Unlock()

	r.store.publish(ctx, "user", "updated", id)
	return u, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	r.store.mu.Lock()
	if _, ok := r.store.users[id]; !ok {
		r.store.mu.Unlock()
		return apperrors.NewNotFoundError("user", id)
	}
	delete(r.store.users, id)
	r.store.mu.Unlock()

	r.store.publish(ctx, "user", "deleted", id)
	return nil
}
