package repositories

import (
	"context"
	"sort"
	"strings"
	"time"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context) []entities.Equipment
	FindEquipment(ctx context.Context, id string) (entities.Equipment, error)
	FindBySerial(ctx context.Context, serial string) (entities.Equipment, error)
	ListByAssignee(ctx context.Context, assigneeID string) []entities.Equipment
	CreateEquipment(ctx context.Context, equipment entities.Equipment) error
	UpdateEquipment(ctx context.Context, id string, mutate func(*entities.Equipment) error) (entities.Equipment, error)
	AssignBatch(ctx context.Context, ids []string, assigneeID, companyID string, date time.Time) ([]entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentRepository struct {
	store *Store
}

func NewEquipmentRepository(store *Store) *EquipmentRepository {
	return &EquipmentRepository{store: store}
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context) []entities.Equipment {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.Equipment, 0, len(r.store.equipment))
	for _, e := range r.store.equipment {
		out = append(out, cloneEquipment(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.equipment[id]
	if !ok {
		return entities.Equipment{}, apperrors.NewNotFoundError("equipment", id)
	}
	return cloneEquipment(e), nil
}

// FindBySerial matches the exact serial number, case-insensitively. Serial
// numbers are unique within the store, import and OCR lookup rely on it.
func (r *EquipmentRepository) FindBySerial(ctx context.Context, serial string) (entities.Equipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.equipment {
		if strings.EqualFold(e.SerialNumber, serial) {
			return cloneEquipment(e), nil
		}
	}
	return entities.Equipment{}, apperrors.NewNotFoundError("equipment", serial)
}

// ListByAssignee is the reverse ownership index, computed on demand from
// the single Equipment.AssignedTo relation.
func (r *EquipmentRepository) ListByAssignee(ctx context.Context, assigneeID string) []entities.Equipment {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []entities.Equipment
	for _, e := range r.store.equipment {
		if e.AssignedTo == assigneeID {
			out = append(out, cloneEquipment(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) error {
	r.store.mu.Lock()
	if err := r.checkSerialLocked(equipment.SerialNumber, equipment.ID); err != nil {
		r.store.mu.Unlock()
		return err
	}
	r.store.equipment[equipment.ID] = cloneEquipment(equipment)
	r.store.mu.Unlock()

	r.store.publish(ctx, "equipment", "created", equipment.ID)
	return nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, mutate func(*entities.Equipment) error) (entities.Equipment, error) {
	r.store.mu.Lock()
	e, ok := r.store.equipment[id]
	if !ok {
		r.store.mu.Unlock()
		return entities.Equipment{}, apperrors.NewNotFoundError("equipment", id)
	}
	e = cloneEquipment(e)
	if err := mutate(&e); err != nil {
		r.store.mu.Unlock()
		return entities.Equipment{}, err
	}
	e.ID = id
	if err := r.checkSerialLocked(e.SerialNumber, id); err != nil {
		r.store.mu.Unlock()
		return entities.Equipment{}, err
	}
	r.store.equipment[id] = e
	r.store.mu.Unlock()

	r.store.publish(ctx, "equipment", "updated", id)
	return cloneEquipment(e), nil
}

// AssignBatch assigns every listed item to the assignee under one lock.
// Either all items move to assigned or the store is left untouched, so a
// concurrent status change cannot leave a multi-item handover half applied.
func (r *EquipmentRepository) AssignBatch(ctx context.Context, ids []string, assigneeID, companyID string, date time.Time) ([]entities.Equipment, error) {
	r.store.mu.Lock()
	staged := make([]entities.Equipment, 0, len(ids))
	for _, id := range ids {
		e, ok := r.store.equipment[id]
		if !ok {
			r.store.mu.Unlock()
			return nil, apperrors.NewNotFoundError("equipment", id)
		}
		if e.Status != entities.EquipmentAvailable {
			r.store.mu.Unlock()
			return nil, apperrors.NewValidationError("equipment %q is no longer available (status %s)", e.Name, e.Status)
		}
		e = cloneEquipment(e)
		e.Status = entities.EquipmentAssigned
		e.AssignedTo = assigneeID
		e.CompanyID = companyID
		d := date
		e.AssignedDate = &d
		staged = append(staged, e)
	}
	for _, e := range staged {
		r.store.equipment[e.ID] = e
	}
	r.store.mu.Unlock()

	out := make([]entities.Equipment, 0, len(staged))
	for _, e := range staged {
		r.store.publish(ctx, "equipment", "updated", e.ID)
		out = append(out, cloneEquipment(e))
	}
	return out, nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	r.store.mu.Lock()
	if _, ok := r.store.equipment[id]; !ok {
		r.store.mu.Unlock()
		return apperrors.NewNotFoundError("equipment", id)
	}
	delete(r.store.equipment, id)
	r.store.mu.Unlock()

	r.store.publish(ctx, "equipment", "deleted", id)
	return nil
}

// checkSerialLocked enforces serial uniqueness. Caller holds the write lock.
func (r *EquipmentRepository) checkSerialLocked(serial, selfID string) error {
	for _, other := range r.store.equipment {
		if other.ID != selfID && strings.EqualFold(other.SerialNumber, serial) {
			return apperrors.NewConflictError("serial number %q is already registered", serial)
		}
	}
	return nil
}
