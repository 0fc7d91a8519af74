package services

import (
	"context"
	"testing"
	"time"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/apperrors"
	"handover-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type EquipmentServiceSuite struct {
	suite.Suite
	store        *repositories.Store
	equipment    *repositories.EquipmentRepository
	handovers    *repositories.HandoverRepository
	collaborator *repositories.CollaboratorRepository
	service      *EquipmentService
	now          time.Time
}

func (s *EquipmentServiceSuite) SetupTest() {
	s.store = repositories.NewStore(nil)
	s.equipment = repositories.NewEquipmentRepository(s.store)
	s.handovers = repositories.NewHandoverRepository(s.store)
	s.collaborator = repositories.NewCollaboratorRepository(s.store)
	users := repositories.NewUserRepository(s.store)
	companies := repositories.NewCompanyRepository(s.store)

	s.now = time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	s.service = NewEquipmentService(s.equipment, users, s.collaborator, companies, s.handovers, zap.NewNop()).
		WithClock(func() time.Time { return s.now })

	s.store.Seed(repositories.SeedData{
		Companies: []entities.Company{
			{ID: "c1", Name: "TechCorp SAS"},
		},
		Users: []entities.User{
			{ID: "u1", Name: "Jean Dupont", Email: "jean@techcorp.fr", CompanyID: "c1"},
		},
		Equipment: []entities.Equipment{
			{ID: "e1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
			{ID: "e2", Name: "iPhone", SerialNumber: "IPH-001", Category: "Téléphone", Status: entities.EquipmentAvailable},
		},
	})
}

func (s *EquipmentServiceSuite) TestAssignMovesToAssignedAndRecordsHandover() {
	ctx := context.Background()

	updated, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{
		AssigneeID: "u1",
		Signature:  "data:image/png;base64,abc",
		Notes:      "onboarding",
	})
	s.Require().NoError(err)
	s.Equal(entities.EquipmentAssigned, updated.Status)
	s.Equal("u1", updated.AssignedTo)
	s.Equal("c1", updated.CompanyID)
	s.Require().NotNil(updated.AssignedDate)
	s.Equal(s.now, *updated.AssignedDate)

	handovers := s.handovers.GetHandovers(ctx)
	s.Require().Len(handovers, 1)
	s.Equal("e1", handovers[0].EquipmentID)
	s.Equal(entities.HandoverAssignment, handovers[0].Type)
}

func (s *EquipmentServiceSuite) TestAssignFailsWhenNotAvailable() {
	ctx := context.Background()

	_, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().NoError(err)

	_, err = s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *EquipmentServiceSuite) TestAssignUnknownAssignee() {
	_, err := s.service.AssignEquipment(context.Background(), "e1", dto.AssignEquipmentDTO{AssigneeID: "ghost"})
	s.Require().Error(err)
}

func (s *EquipmentServiceSuite) TestAssignResolvesCollaboratorCompanyByFiliale() {
	ctx := context.Background()
	s.Require().NoError(s.collaborator.CreateProfile(ctx, entities.CollaboratorProfile{
		ID:      "collab-1",
		Nom:     "Martin",
		Prenom:  "Marie",
		Email:   "marie@techcorp.fr",
		Filiale: "TechCorp SAS",
		Status:  entities.CollaboratorActive,
	}))

	updated, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "collab-1"})
	s.Require().NoError(err)
	s.Equal("c1", updated.CompanyID)
}

func (s *EquipmentServiceSuite) TestUnassignClearsAssigneeCompanyAndDate() {
	ctx := context.Background()
	_, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().NoError(err)

	updated, err := s.service.UnassignEquipment(ctx, "e1")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentAvailable, updated.Status)
	s.Empty(updated.AssignedTo)
	s.Empty(updated.CompanyID)
	s.Nil(updated.AssignedDate)
}

func (s *EquipmentServiceSuite) TestUnassignRequiresAssignedStatus() {
	_, err := s.service.UnassignEquipment(context.Background(), "e1")
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *EquipmentServiceSuite) TestMaintenanceFromAssignedClearsOwner() {
	ctx := context.Background()
	_, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().NoError(err)

	updated, err := s.service.SetMaintenance(ctx, "e1")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentMaintenance, updated.Status)
	s.Empty(updated.AssignedTo)
}

func (s *EquipmentServiceSuite) TestRebutIsTerminal() {
	ctx := context.Background()

	_, err := s.service.RetireEquipment(ctx, "e1")
	s.Require().NoError(err)

	_, err = s.service.RetireEquipment(ctx, "e1")
	s.Require().Error(err)
	_, err = s.service.SetMaintenance(ctx, "e1")
	s.Require().Error(err)
	_, err = s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().Error(err)
	_, err = s.service.UnassignEquipment(ctx, "e1")
	s.Require().Error(err)
}

func (s *EquipmentServiceSuite) TestUpdateToAssignedRequiresAssignee() {
	status := string(entities.EquipmentAssigned)
	_, err := s.service.UpdateEquipment(context.Background(), "e1", dto.UpdateEquipmentDTO{Status: &status})
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *EquipmentServiceSuite) TestUpdateToAssignedRejectsUnknownAssignee() {
	ctx := context.Background()
	_, err := s.service.UpdateEquipment(ctx, "e1", dto.UpdateEquipmentDTO{
		Status:     utils.StringPtr(string(entities.EquipmentAssigned)),
		AssignedTo: utils.StringPtr("ghost"),
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)

	stored, err := s.equipment.FindEquipment(ctx, "e1")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentAvailable, stored.Status)
	s.Empty(stored.AssignedTo)
}

func (s *EquipmentServiceSuite) TestUpdateToAssignedDerivesCompanyFromAssignee() {
	updated, err := s.service.UpdateEquipment(context.Background(), "e1", dto.UpdateEquipmentDTO{
		Status:     utils.StringPtr(string(entities.EquipmentAssigned)),
		AssignedTo: utils.StringPtr("u1"),
	})
	s.Require().NoError(err)
	s.Equal("u1", updated.AssignedTo)
	s.Equal("c1", updated.CompanyID)
	s.Require().NotNil(updated.AssignedDate)
}

func (s *EquipmentServiceSuite) TestUpdateReassignResolvesNewAssigneeCompany() {
	ctx := context.Background()
	_, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().NoError(err)

	s.Require().NoError(s.collaborator.CreateProfile(ctx, entities.CollaboratorProfile{
		ID:      "collab-1",
		Nom:     "Martin",
		Prenom:  "Marie",
		Filiale: "Filiale inconnue",
		Status:  entities.CollaboratorActive,
	}))

	updated, err := s.service.UpdateEquipment(ctx, "e1", dto.UpdateEquipmentDTO{
		AssignedTo: utils.StringPtr("collab-1"),
	})
	s.Require().NoError(err)
	s.Equal("collab-1", updated.AssignedTo)
	s.Empty(updated.CompanyID)
}

func (s *EquipmentServiceSuite) TestUpdateToAvailableClearsOwnerFields() {
	ctx := context.Background()
	_, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().NoError(err)

	status := string(entities.EquipmentAvailable)
	updated, err := s.service.UpdateEquipment(ctx, "e1", dto.UpdateEquipmentDTO{Status: &status})
	s.Require().NoError(err)
	s.Empty(updated.AssignedTo)
	s.Empty(updated.CompanyID)
	s.Nil(updated.AssignedDate)
}

func (s *EquipmentServiceSuite) TestCreateRejectsDuplicateSerial() {
	ctx := context.Background()
	_, err := s.service.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Dell XPS",
		SerialNumber: "mbp-001",
		Category:     "Ordinateur",
	})
	s.Require().Error(err)
}

func (s *EquipmentServiceSuite) TestCreateRequiresCoreFields() {
	_, err := s.service.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:     "  ",
		Category: "Ordinateur",
	})
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *EquipmentServiceSuite) TestAssignWithExplicitDate() {
	backfill := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	updated, err := s.service.AssignEquipment(context.Background(), "e2", dto.AssignEquipmentDTO{
		AssigneeID: "u1",
		Date:       null.TimeFrom(backfill),
	})
	s.Require().NoError(err)
	s.Equal(backfill, *updated.AssignedDate)
}

func (s *EquipmentServiceSuite) TestGetEquipmentFiltersByStatus() {
	ctx := context.Background()
	_, err := s.service.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{AssigneeID: "u1"})
	s.Require().NoError(err)

	items, total, err := s.service.GetEquipment(ctx, utils.Filter{Status: "available", Limit: 50})
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(items, 1)
	s.Equal("e2", items[0].ID)
}

func TestEquipmentServiceSuite(t *testing.T) {
	suite.Run(t, new(EquipmentServiceSuite))
}
