package repositories

import (
	"context"
	"sort"
	"strings"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
)

type CollaboratorRepositoryInterface interface {
	GetRequests(ctx context.Context) []entities.CollaboratorRequest
	FindRequest(ctx context.Context, id string) (entities.CollaboratorRequest, error)
	CreateRequest(ctx context.Context, request entities.CollaboratorRequest) error
	UpdateRequest(ctx context.Context, id string, mutate func(*entities.CollaboratorRequest) error) (entities.CollaboratorRequest, error)

	GetProfiles(ctx context.Context) []entities.CollaboratorProfile
	FindProfile(ctx context.Context, id string) (entities.CollaboratorProfile, error)
	FindProfileByEmail(ctx context.Context, email string) (entities.CollaboratorProfile, error)
	CreateProfile(ctx context.Context, profile entities.CollaboratorProfile) error
	UpdateProfile(ctx context.Context, id string, mutate func(*entities.CollaboratorProfile) error) (entities.CollaboratorProfile, error)
}

type CollaboratorRepository struct {
	store *Store
}

func NewCollaboratorRepository(store *Store) *CollaboratorRepository {
	return &CollaboratorRepository{store: store}
}

func (r *CollaboratorRepository) GetRequests(ctx context.Context) []entities.CollaboratorRequest {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.CollaboratorRequest, 0, len(r.store.requests))
	for _, req := range r.store.requests {
		out = append(out, cloneRequest(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *CollaboratorRepository) FindRequest(ctx context.Context, id string) (entities.CollaboratorRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	req, ok := r.store.requests[id]
	if !ok {
		return entities.CollaboratorRequest{}, apperrors.NewNotFoundError("collaborator request", id)
	}
	return cloneRequest(req), nil
}

func (r *CollaboratorRepository) CreateRequest(ctx context.Context, request entities.CollaboratorRequest) error {
	r.store.mu.Lock()
	r.store.requests[request.ID] = cloneRequest(request)
	r.store.mu.Unlock()

	r.store.publish(ctx, "collaborator_request", "created", request.ID)
	return nil
}

func (r *CollaboratorRepository) UpdateRequest(ctx context.Context, id string, mutate func(*entities.CollaboratorRequest) error) (entities.CollaboratorRequest, error) {
	r.store.mu.Lock()
	req, ok := r.store.requests[id]
	if !ok {
		r.store.mu.Unlock()
		return entities.CollaboratorRequest{}, apperrors.NewNotFoundError("collaborator request", id)
	}
	req = cloneRequest(req)
	if err := mutate(&req); err != nil {
		r.store.mu.Unlock()
		return entities.CollaboratorRequest{}, err
	}
	req.ID = id
	r.store.requests[id] = req
	r.store.mu.Unlock()

	r.store.publish(ctx, "collaborator_request", "updated", id)
	return cloneRequest(req), nil
}

func (r *CollaboratorRepository) GetProfiles(ctx context.Context) []entities.CollaboratorProfile {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.CollaboratorProfile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		out = append(out, cloneProfile(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out
}

func (r *CollaboratorRepository) FindProfile(ctx context.Context, id string) (entities.CollaboratorProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return entities.CollaboratorProfile{}, apperrors.NewNotFoundError("collaborator", id)
	}
	return cloneProfile(p), nil
}

func (r *CollaboratorRepository) FindProfileByEmail(ctx context.Context, email string) (entities.CollaboratorProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.profiles {
		if strings.EqualFold(p.Email, email) {
			return cloneProfile(p), nil
		}
	}
	return entities.CollaboratorProfile{}, apperrors.NewNotFoundError("collaborator", email)
}

func (r *CollaboratorRepository) CreateProfile(ctx context.Context, profile entities.CollaboratorProfile) error {
	r.store.mu.Lock()
	r.store.profiles[profile.ID] = cloneProfile(profile)
	r.store.mu.Unlock()

	r.store.publish(ctx, "collaborator", "created", profile.ID)
	return nil
}

func (r *CollaboratorRepository) UpdateProfile(ctx context.Context, id string, mutate func(*entities.CollaboratorProfile) error) (entities.CollaboratorProfile, error) {
	r.store.mu.Lock()
	p, ok := r.store.profiles[id]
	if !ok {
		r.store.mu.Unlock()
		return entities.CollaboratorProfile{}, apperrors.NewNotFoundError("collaborator", id)
	}
	p = cloneProfile(p)
	if err := mutate(&p); err != nil {
		r.store.mu.Unlock()
		return entities.CollaboratorProfile{}, err
	}
	p.ID = id
	r.store.profiles[id] = p
	r.store.mu.Unlock()

	r.store.publish(ctx, "collaborator", "updated", id)
	return cloneProfile(p), nil
}
