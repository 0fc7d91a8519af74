package repositories

import (
	"context"
	"sync"

	"handover-system/internal/entities"
	"handover-system/pkg/eventbus"
)

// ChangeEvent is published on the event bus after every successful store
// mutation, so list views and listeners can refresh.
type ChangeEvent struct {
	Entity string
	Action string
	ID     string
}

func (e ChangeEvent) Name() string { return e.Entity + "." + e.Action }

// Store is the single owner of all entities. Workflow services hold no
// private copies, they read snapshots and request mutations through the
// typed repositories sharing this store. All access is serialized with one
// RWMutex so concurrent HTTP handlers cannot observe torn state.
type Store struct {
	mu  sync.RWMutex
	bus *eventbus.Bus

	companies map[string]entities.Company
	users     map[string]entities.User
	equipment map[string]entities.Equipment
	handovers map[string]entities.Handover
	requests  map[string]entities.CollaboratorRequest
	profiles  map[string]entities.CollaboratorProfile
	returns   map[string]entities.ReturnRequest
	documents map[string]entities.HandoverDocument
}

// NewStore creates an empty store. The bus may be nil when change
// notifications are not needed (tests, one-shot tools).
func NewStore(bus *eventbus.Bus) *Store {
	return &Store{
		bus:       bus,
		companies: make(map[string]entities.Company),
		users:     make(map[string]entities.User),
		equipment: make(map[string]entities.Equipment),
		handovers: make(map[string]entities.Handover),
		requests:  make(map[string]entities.CollaboratorRequest),
		profiles:  make(map[string]entities.CollaboratorProfile),
		returns:   make(map[string]entities.ReturnRequest),
		documents: make(map[string]entities.HandoverDocument),
	}
}

// SeedData is the initial dataset loaded at startup.
type SeedData struct {
	Companies []entities.Company
	Users     []entities.User
	Equipment []entities.Equipment
	Handovers []entities.Handover
	Requests  []entities.CollaboratorRequest
	Profiles  []entities.CollaboratorProfile
}

// Seed replaces the store contents with the given dataset.
func (s *Store) Seed(data SeedData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range data.Companies {
		s.companies[c.ID] = c
	}
	for _, u := range data.Users {
		s.users[u.ID] = u
	}
	for _, e := range data.Equipment {
		s.equipment[e.ID] = cloneEquipment(e)
	}
	for _, h := range data.Handovers {
		s.handovers[h.ID] = h
	}
	for _, r := range data.Requests {
		s.requests[r.ID] = cloneRequest(r)
	}
	for _, p := range data.Profiles {
		s.profiles[p.ID] = cloneProfile(p)
	}
}

func (s *Store) publish(ctx context.Context, entity, action, id string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, ChangeEvent{Entity: entity, Action: action, ID: id})
}

// Clone helpers keep snapshots detached from the store's own slices.

func cloneEquipment(e entities.Equipment) entities.Equipment {
	if e.AssignedDate != nil {
		d := *e.AssignedDate
		e.AssignedDate = &d
	}
	if e.AmortizationEnd != nil {
		d := *e.AmortizationEnd
		e.AmortizationEnd = &d
	}
	return e
}

func cloneRequest(r entities.CollaboratorRequest) entities.CollaboratorRequest {
	r.GroupesMail = append([]string(nil), r.GroupesMail...)
	r.Logiciels = append([]entities.Software(nil), r.Logiciels...)
	r.EquipmentIDs = append([]string(nil), r.EquipmentIDs...)
	if r.ValidatedAt != nil {
		t := *r.ValidatedAt
		r.ValidatedAt = &t
	}
	return r
}

func cloneProfile(p entities.CollaboratorProfile) entities.CollaboratorProfile {
	p.GroupesMail = append([]string(nil), p.GroupesMail...)
	p.Logiciels = append([]entities.Software(nil), p.Logiciels...)
	return p
}

func cloneReturnRequest(r entities.ReturnRequest) entities.ReturnRequest {
	r.EquipmentReturns = append([]entities.EquipmentReturn(nil), r.EquipmentReturns...)
	if r.SignedAt != nil {
		t := *r.SignedAt
		r.SignedAt = &t
	}
	return r
}

func cloneDocument(d entities.HandoverDocument) entities.HandoverDocument {
	d.EquipmentIDs = append([]string(nil), d.EquipmentIDs...)
	return d
}
