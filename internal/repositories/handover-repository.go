package repositories

import (
	"context"
	"sort"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
)

type HandoverRepositoryInterface interface {
	GetHandovers(ctx context.Context) []entities.Handover
	CreateHandover(ctx context.Context, handover entities.Handover) error

	GetDocuments(ctx context.Context) []entities.HandoverDocument
	FindDocument(ctx context.Context, id string) (entities.HandoverDocument, error)
	CreateDocument(ctx context.Context, document entities.HandoverDocument) error
}

type HandoverRepository struct {
	store *Store
}

func NewHandoverRepository(store *Store) *HandoverRepository {
	return &HandoverRepository{store: store}
}

func (r *HandoverRepository) GetHandovers(ctx context.Context) []entities.Handover {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.Handover, 0, len(r.store.handovers))
	for _, h := range r.store.handovers {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *HandoverRepository) CreateHandover(ctx context.Context, handover entities.Handover) error {
	r.store.mu.Lock()
	r.store.handovers[handover.ID] = handover
	r.store.mu.Unlock()

	r.store.publish(ctx, "handover", "created", handover.ID)
	return nil
}

func (r *HandoverRepository) GetDocuments(ctx context.Context) []entities.HandoverDocument {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.HandoverDocument, 0, len(r.store.documents))
	for _, d := range r.store.documents {
		out = append(out, cloneDocument(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *HandoverRepository) FindDocument(ctx context.Context, id string) (entities.HandoverDocument, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.documents[id]
	if !ok {
		return entities.HandoverDocument{}, apperrors.NewNotFoundError("handover document", id)
	}
	return cloneDocument(d), nil
}

// CreateDocument stores an immutable signed record. There is deliberately
// no update method on documents.
func (r *HandoverRepository) CreateDocument(ctx context.Context, document entities.HandoverDocument) error {
	r.store.mu.Lock()
	r.store.documents[document.ID] = cloneDocument(document)
	r.store.mu.Unlock()

	r.store.publish(ctx, "handover_document", "created", document.ID)
	return nil
}
