package repositories

import (
	"context"
	"sort"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
)

type ReturnRepositoryInterface interface {
	GetReturnRequests(ctx context.Context) []entities.ReturnRequest
	FindReturnRequest(ctx context.Context, id string) (entities.ReturnRequest, error)
	CreateReturnRequest(ctx context.Context, request entities.ReturnRequest) error
	UpdateReturnRequest(ctx context.Context, id string, mutate func(*entities.ReturnRequest) error) (entities.ReturnRequest, error)
}

type ReturnRepository struct {
	store *Store
}

func NewReturnRepository(store *Store) *ReturnRepository {
	return &ReturnRepository{store: store}
}

func (r *ReturnRepository) GetReturnRequests(ctx context.Context) []entities.ReturnRequest {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.ReturnRequest, 0, len(r.store.returns))
	for _, req := range r.store.returns {
		out = append(out, cloneReturnRequest(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *ReturnRepository) FindReturnRequest(ctx context.Context, id string) (entities.ReturnRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	req, ok := r.store.returns[id]
	if !ok {
		return entities.ReturnRequest{}, apperrors.NewNotFoundError("return request", id)
	}
	return cloneReturnRequest(req), nil
}

func (r *ReturnRepository) CreateReturnRequest(ctx context.Context, request entities.ReturnRequest) error {
	r.store.mu.Lock()
	r.store.returns[request.ID] = cloneReturnRequest(request)
	r.store.mu.Unlock()

	r.store.publish(ctx, "return_request", "created", request.ID)
	return nil
}

func (r *ReturnRepository) UpdateReturnRequest(ctx context.Context, id string, mutate func(*entities.ReturnRequest) error) (entities.ReturnRequest, error) {
	r.store.mu.Lock()
	req, ok := r.store.returns[id]
	if !ok {
		r.store.mu.Unlock()
		return entities.ReturnRequest{}, apperrors.NewNotFoundError("return request", id)
	}
	req = cloneReturnRequest(req)
	if err := mutate(&req); err != nil {
		r.store.mu.Unlock()
		return entities.ReturnRequest{}, err
	}
	req.ID = id
	r.store.returns[id] = req
	r.store.mu.Unlock()

	r.store.publish(ctx, "return_request", "updated", id)
	return cloneReturnRequest(req), nil
}
