package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
	"handover-system/pkg/eventbus"
	"handover-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedEquipment(store *Store) {
	store.Seed(SeedData{
		Equipment: []entities.Equipment{
			{ID: "e1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
			{ID: "e2", Name: "Dell XPS", SerialNumber: "XPS-001", Category: "Ordinateur", Status: entities.EquipmentAssigned, AssignedTo: "u1", AssignedDate: utils.TimePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))},
		},
	})
}

func TestCreateEquipmentEnforcesSerialUniqueness(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	err := repo.CreateEquipment(context.Background(), entities.Equipment{
		ID: "e3", Name: "Other", SerialNumber: "mbp-001", Category: "Ordinateur",
	})
	require.Error(t, err)

	var conflict *apperrors.ConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestUpdateEquipmentEnforcesSerialUniqueness(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	_, err := repo.UpdateEquipment(context.Background(), "e2", func(e *entities.Equipment) error {
		e.SerialNumber = "MBP-001"
		return nil
	})
	require.Error(t, err)
}

func TestUpdateEquipmentMutationErrorLeavesStoreUntouched(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	boom := errors.New("boom")
	_, err := repo.UpdateEquipment(context.Background(), "e1", func(e *entities.Equipment) error {
		e.Name = "mutated"
		return boom
	})
	require.ErrorIs(t, err, boom)

	e, err := repo.FindEquipment(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro", e.Name)
}

func TestFindReturnsDetachedSnapshots(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	snapshot, err := repo.FindEquipment(context.Background(), "e2")
	require.NoError(t, err)
	*snapshot.AssignedDate = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	snapshot.Name = "tampered"

	fresh, err := repo.FindEquipment(context.Background(), "e2")
	require.NoError(t, err)
	assert.Equal(t, "Dell XPS", fresh.Name)
	assert.Equal(t, 2024, fresh.AssignedDate.Year())
}

func TestFindBySerialIsCaseInsensitive(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	e, err := repo.FindBySerial(context.Background(), "xps-001")
	require.NoError(t, err)
	assert.Equal(t, "e2", e.ID)
}

func TestListByAssignee(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	held := repo.ListByAssignee(context.Background(), "u1")
	require.Len(t, held, 1)
	assert.Equal(t, "e2", held[0].ID)

	assert.Empty(t, repo.ListByAssignee(context.Background(), "nobody"))
}

func TestGetEquipmentSortedByName(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	all := repo.GetEquipment(context.Background())
	require.Len(t, all, 2)
	assert.Equal(t, "Dell XPS", all[0].Name)
	assert.Equal(t, "MacBook Pro", all[1].Name)
}

func TestAssignBatchIsAllOrNothing(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	date := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

	// e2 is already assigned, so the whole batch must be rejected
	_, err := repo.AssignBatch(context.Background(), []string{"e1", "e2"}, "collab-1", "c1", date)
	require.Error(t, err)

	e1, err := repo.FindEquipment(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentAvailable, e1.Status)
	assert.Empty(t, e1.AssignedTo)

	e2, err := repo.FindEquipment(context.Background(), "e2")
	require.NoError(t, err)
	assert.Equal(t, "u1", e2.AssignedTo)
}

func TestAssignBatchUnknownIDLeavesStoreUntouched(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	seedEquipment(store)

	_, err := repo.AssignBatch(context.Background(), []string{"e1", "ghost"}, "collab-1", "c1", time.Now())
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	e1, err := repo.FindEquipment(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentAvailable, e1.Status)
}

func TestAssignBatchAssignsEveryItem(t *testing.T) {
	store := NewStore(nil)
	repo := NewEquipmentRepository(store)
	store.Seed(SeedData{
		Equipment: []entities.Equipment{
			{ID: "e1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
			{ID: "e2", Name: "Dell XPS", SerialNumber: "XPS-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
		},
	})

	date := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	assigned, err := repo.AssignBatch(context.Background(), []string{"e1", "e2"}, "collab-1", "c1", date)
	require.NoError(t, err)
	require.Len(t, assigned, 2)

	for _, id := range []string{"e1", "e2"} {
		e, err := repo.FindEquipment(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, entities.EquipmentAssigned, e.Status)
		assert.Equal(t, "collab-1", e.AssignedTo)
		assert.Equal(t, "c1", e.CompanyID)
		require.NotNil(t, e.AssignedDate)
		assert.Equal(t, date, *e.AssignedDate)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := NewStore(nil)
	repo := NewUserRepository(store)

	require.NoError(t, repo.CreateUser(context.Background(), entities.User{
		ID: "u1", Name: "Jean", Email: "jean@techcorp.fr", CompanyID: "c1",
	}))
	err := repo.CreateUser(context.Background(), entities.User{
		ID: "u2", Name: "Jean bis", Email: "JEAN@techcorp.fr", CompanyID: "c1",
	})
	assert.Error(t, err)
}

func TestMutationsPublishChangeEvents(t *testing.T) {
	bus := eventbus.New(zap.NewNop())

	var mu sync.Mutex
	var got []string
	done := make(chan struct{}, 1)
	bus.Subscribe("equipment.created", func(ctx context.Context, event eventbus.Event) error {
		change := event.(ChangeEvent)
		mu.Lock()
		got = append(got, change.ID)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	store := NewStore(bus)
	repo := NewEquipmentRepository(store)
	require.NoError(t, repo.CreateEquipment(context.Background(), entities.Equipment{
		ID: "e1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur",
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("no change event received")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"e1"}, got)
}

func TestDocumentsAreAppendOnly(t *testing.T) {
	store := NewStore(nil)
	repo := NewHandoverRepository(store)

	doc := entities.HandoverDocument{
		ID:             "d1",
		Type:           entities.DocumentHandover,
		CollaboratorID: "collab-1",
		EquipmentIDs:   []string{"e1"},
		Signature:      "data:image/png;base64,abc",
		CreatedAt:      time.Now(),
	}
	require.NoError(t, repo.CreateDocument(context.Background(), doc))

	stored, err := repo.FindDocument(context.Background(), "d1")
	require.NoError(t, err)
	stored.EquipmentIDs[0] = "tampered"

	fresh, err := repo.FindDocument(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, fresh.EquipmentIDs)
}
