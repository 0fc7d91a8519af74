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

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type DepartureServiceSuite struct {
	suite.Suite
	store        *repositories.Store
	collaborator *repositories.CollaboratorRepository
	equipment    *repositories.EquipmentRepository
	returns      *repositories.ReturnRepository
	handovers    *repositories.HandoverRepository
	service      *DepartureService
	now          time.Time
}

func (s *DepartureServiceSuite) SetupTest() {
	s.store = repositories.NewStore(nil)
	s.collaborator = repositories.NewCollaboratorRepository(s.store)
	s.equipment = repositories.NewEquipmentRepository(s.store)
	s.returns = repositories.NewReturnRepository(s.store)
	s.handovers = repositories.NewHandoverRepository(s.store)

	s.now = time.Date(2024, 5, 10, 16, 0, 0, 0, time.UTC)
	s.service = NewDepartureService(s.collaborator, s.equipment, s.returns, s.handovers, zap.NewNop()).
		WithClock(func() time.Time { return s.now })

	assigned := s.now.AddDate(0, -3, 0)
	s.store.Seed(repositories.SeedData{
		Equipment: []entities.Equipment{
			{ID: "e1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAssigned, AssignedTo: "collab-1", CompanyID: "c1", AssignedDate: utils.TimePtr(assigned)},
			{ID: "e2", Name: "iPhone", SerialNumber: "IPH-001", Category: "Téléphone", Status: entities.EquipmentAssigned, AssignedTo: "collab-1", CompanyID: "c1", AssignedDate: utils.TimePtr(assigned)},
			{ID: "e3", Name: "Dell XPS", SerialNumber: "XPS-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
		},
		Profiles: []entities.CollaboratorProfile{
			{ID: "collab-1", Nom: "Dupont", Prenom: "Jean", Email: "jean.dupont@techcorp.fr", Filiale: "TechCorp SAS", Status: entities.CollaboratorActive},
			{ID: "collab-2", Nom: "Martin", Prenom: "Marie", Email: "marie.martin@techcorp.fr", Filiale: "TechCorp SAS", Status: entities.CollaboratorDeparted},
		},
	})
}

func (s *DepartureServiceSuite) completePayload() dto.CompleteDepartureDTO {
	return dto.CompleteDepartureDTO{
		CollaboratorID: "collab-1",
		Type:           "definitive",
		DepartureDate:  s.now.AddDate(0, 0, 14),
		Items: []dto.EquipmentReturnDTO{
			{EquipmentID: "e1", Status: "ok", Received: true},
			{EquipmentID: "e2", Status: "maintenance", Received: true, Notes: "écran fissuré"},
		},
		Signature: "data:image/png;base64,abc123",
	}
}

func (s *DepartureServiceSuite) TestPreviewListsHeldEquipmentWithDefaults() {
	preview, err := s.service.Preview(context.Background(), "collab-1")
	s.Require().NoError(err)
	s.Equal("Jean Dupont", preview.Collaborator.FullName())
	s.Require().Len(preview.Items, 2)
	for _, item := range preview.Items {
		s.Equal(entities.ConditionOK, item.Status)
		s.False(item.Received)
	}
}

func (s *DepartureServiceSuite) TestPreviewRequiresActiveCollaborator() {
	_, err := s.service.Preview(context.Background(), "collab-2")
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *DepartureServiceSuite) TestReadyForSignatureGate() {
	s.Error(s.service.ReadyForSignature(nil))
	s.Error(s.service.ReadyForSignature([]entities.EquipmentReturn{
		{EquipmentID: "e1", Received: true},
		{EquipmentID: "e2", Received: false},
	}))
	s.NoError(s.service.ReadyForSignature([]entities.EquipmentReturn{
		{EquipmentID: "e1", Received: true},
		{EquipmentID: "e2", Received: true},
	}))
}

func (s *DepartureServiceSuite) TestCompleteCreatesPendingReturnAndDocument() {
	ctx := context.Background()

	request, err := s.service.Complete(ctx, s.completePayload())
	s.Require().NoError(err)
	s.Equal(entities.ReturnPending, request.Status)
	s.Require().NotNil(request.SignedAt)
	s.Equal(s.now, *request.SignedAt)
	s.Len(request.EquipmentReturns, 2)

	// equipment untouched until the return gets processed
	e, err := s.equipment.FindEquipment(ctx, "e1")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentAssigned, e.Status)

	profile, err := s.collaborator.FindProfile(ctx, "collab-1")
	s.Require().NoError(err)
	s.Equal(entities.CollaboratorLeaving, profile.Status)

	documents := s.handovers.GetDocuments(ctx)
	s.Require().Len(documents, 1)
	s.Equal(entities.DocumentReturn, documents[0].Type)
	s.ElementsMatch([]string{"e1", "e2"}, documents[0].EquipmentIDs)
}

func (s *DepartureServiceSuite) TestCompleteRejectsUnreceivedItems() {
	payload := s.completePayload()
	payload.Items[1].Received = false

	_, err := s.service.Complete(context.Background(), payload)
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
}

func (s *DepartureServiceSuite) TestCompleteRejectsMissingSignature() {
	payload := s.completePayload()
	payload.Signature = "   "

	_, err := s.service.Complete(context.Background(), payload)
	s.Require().Error(err)
}

func (s *DepartureServiceSuite) TestCompleteRejectsForeignEquipment() {
	payload := s.completePayload()
	payload.Items = append(payload.Items, dto.EquipmentReturnDTO{EquipmentID: "e3", Status: "ok", Received: true})

	_, err := s.service.Complete(context.Background(), payload)
	s.Require().Error(err)
}

func (s *DepartureServiceSuite) TestCompleteRejectsPartialCoverage() {
	payload := s.completePayload()
	payload.Items = payload.Items[:1]

	_, err := s.service.Complete(context.Background(), payload)
	s.Require().Error(err)
}

func (s *DepartureServiceSuite) TestCompleteRejectsDuplicateLines() {
	payload := s.completePayload()
	payload.Items[1] = payload.Items[0]

	_, err := s.service.Complete(context.Background(), payload)
	s.Require().Error(err)
}

func (s *DepartureServiceSuite) TestProcessReturnReconcilesEquipment() {
	ctx := context.Background()

	request, err := s.service.Complete(ctx, s.completePayload())
	s.Require().NoError(err)

	processed, err := s.service.ProcessReturn(ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(entities.ReturnCompleted, processed.Status)

	e1, err := s.equipment.FindEquipment(ctx, "e1")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentAvailable, e1.Status)
	s.Empty(e1.AssignedTo)
	s.Nil(e1.AssignedDate)

	e2, err := s.equipment.FindEquipment(ctx, "e2")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentMaintenance, e2.Status)
	s.Empty(e2.AssignedTo)

	profile, err := s.collaborator.FindProfile(ctx, "collab-1")
	s.Require().NoError(err)
	s.Equal(entities.CollaboratorDeparted, profile.Status)

	// one return handover per item
	returnCount := 0
	for _, h := range s.handovers.GetHandovers(ctx) {
		if h.Type == entities.HandoverReturn {
			returnCount++
		}
	}
	s.Equal(2, returnCount)
}

func (s *DepartureServiceSuite) TestProcessReturnMapsRebut() {
	ctx := context.Background()
	payload := s.completePayload()
	payload.Items[0].Status = "rebut"

	request, err := s.service.Complete(ctx, payload)
	s.Require().NoError(err)
	_, err = s.service.ProcessReturn(ctx, request.ID)
	s.Require().NoError(err)

	e1, err := s.equipment.FindEquipment(ctx, "e1")
	s.Require().NoError(err)
	s.Equal(entities.EquipmentRebut, e1.Status)
}

func (s *DepartureServiceSuite) TestProcessReturnOnlyOnce() {
	ctx := context.Background()
	request, err := s.service.Complete(ctx, s.completePayload())
	s.Require().NoError(err)

	_, err = s.service.ProcessReturn(ctx, request.ID)
	s.Require().NoError(err)
	_, err = s.service.ProcessReturn(ctx, request.ID)
	s.Require().Error(err)
}

func TestDepartureServiceSuite(t *testing.T) {
	suite.Run(t, new(DepartureServiceSuite))
}
