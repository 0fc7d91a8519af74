package services

import (
	"context"
	"time"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DepartureServiceInterface interface {
	Preview(ctx context.Context, collaboratorID string) (dto.DeparturePreviewDTO, error)
	ReadyForSignature(items []entities.EquipmentReturn) error
	Complete(ctx context.Context, payload dto.CompleteDepartureDTO) (entities.ReturnRequest, error)
	GetReturnRequests(ctx context.Context) []entities.ReturnRequest
	FindReturnRequest(ctx context.Context, id string) (entities.ReturnRequest, error)
	ProcessReturn(ctx context.Context, id string) (entities.ReturnRequest, error)
}

// DepartureService mirrors onboarding in reverse: collect the equipment of
// a departing collaborator, record per-item condition, require a signature,
// then process the return back onto the equipment pool.
type DepartureService struct {
	collaboratorRepository repositories.CollaboratorRepositoryInterface
	equipmentRepository    repositories.EquipmentRepositoryInterface
	returnRepository       repositories.ReturnRepositoryInterface
	handoverRepository     repositories.HandoverRepositoryInterface
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewDepartureService(
	collaboratorRepository repositories.CollaboratorRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	returnRepository repositories.ReturnRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
	logger *zap.Logger,
) *DepartureService {
	return &DepartureService{
		collaboratorRepository: collaboratorRepository,
		equipmentRepository:    equipmentRepository,
		returnRepository:       returnRepository,
		handoverRepository:     handoverRepository,
		logger:                 logger,
		now:                    time.Now,
	}
}

func (s *DepartureService) WithClock(now func() time.Time) *DepartureService {
	s.now = now
	return s
}

// Preview starts a departure: the collaborator must be active, and their
// currently assigned equipment becomes the working list, defaulted to
// condition ok and not yet received.
func (s *DepartureService) Preview(ctx context.Context, collaboratorID string) (dto.DeparturePreviewDTO, error) {
	profile, err := s.collaboratorRepository.FindProfile(ctx, collaboratorID)
	if err != nil {
		return dto.DeparturePreviewDTO{}, err
	}
	if profile.Status != entities.CollaboratorActive {
		return dto.DeparturePreviewDTO{}, apperrors.NewValidationError("collaborator %s is %s, only active collaborators can depart", profile.FullName(), profile.Status)
	}

	equipment := s.equipmentRepository.ListByAssignee(ctx, collaboratorID)
	items := make([]entities.EquipmentReturn, 0, len(equipment))
	for _, e := range equipment {
		items = append(items, entities.EquipmentReturn{
			EquipmentID: e.ID,
			Status:      entities.ConditionOK,
			Received:    false,
		})
	}

	return dto.DeparturePreviewDTO{
		Collaborator: profile,
		Items:        items,
		Equipment:    equipment,
	}, nil
}

// ReadyForSignature is the gate between recording conditions and capturing
// the signature. Partial returns are not supported: every item must be
// marked received.
func (s *DepartureService) ReadyForSignature(items []entities.EquipmentReturn) error {
	if len(items) == 0 {
		return apperrors.NewValidationError("there is no equipment to return")
	}
	for _, item := range items {
		if !item.Received {
			return apperrors.NewValidationError("equipment %q has not been marked as received", item.EquipmentID)
		}
	}
	return nil
}

// Complete records the signed return: all items received, signature
// present, every line matching equipment actually held by the collaborator.
// It creates the pending ReturnRequest and the immutable return document,
// and moves the collaborator to leaving. Equipment state is reconciled by
// ProcessReturn, so the signed document always reflects the state at
// signature time.
func (s *DepartureService) Complete(ctx context.Context, payload dto.CompleteDepartureDTO) (entities.ReturnRequest, error) {
	profile, err := s.collaboratorRepository.FindProfile(ctx, payload.CollaboratorID)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	if profile.Status != entities.CollaboratorActive {
		return entities.ReturnRequest{}, apperrors.NewValidationError("collaborator %s is %s, only active collaborators can depart", profile.FullName(), profile.Status)
	}

	held := make(map[string]bool)
	for _, e := range s.equipmentRepository.ListByAssignee(ctx, payload.CollaboratorID) {
		held[e.ID] = true
	}

	items := make([]entities.EquipmentReturn, 0, len(payload.Items))
	covered := make(map[string]bool)
	for _, item := range payload.Items {
		if !held[item.EquipmentID] {
			return entities.ReturnRequest{}, apperrors.NewValidationError("equipment %q is not assigned to this collaborator", item.EquipmentID)
		}
		if covered[item.EquipmentID] {
			return entities.ReturnRequest{}, apperrors.NewValidationError("equipment %q is listed twice", item.EquipmentID)
		}
		covered[item.EquipmentID] = true
		items = append(items, entities.EquipmentReturn{
			EquipmentID: item.EquipmentID,
			Status:      entities.ReturnCondition(item.Status),
			Received:    item.Received,
			Notes:       item.Notes,
			Photo:       item.Photo,
		})
	}
	for id := range held {
		if !covered[id] {
			return entities.ReturnRequest{}, apperrors.NewValidationError("equipment %q is assigned to this collaborator but missing from the return", id)
		}
	}

	if err := s.ReadyForSignature(items); err != nil {
		return entities.ReturnRequest{}, err
	}
	if IsBlankSignature(payload.Signature) {
		return entities.ReturnRequest{}, apperrors.NewValidationError("a signature is required to complete the return")
	}

	signedAt := s.now()
	request := entities.ReturnRequest{
		ID:               uuid.NewString(),
		CollaboratorID:   payload.CollaboratorID,
		Type:             entities.DepartureType(payload.Type),
		DepartureDate:    payload.DepartureDate,
		CreatedAt:        signedAt,
		Status:           entities.ReturnPending,
		EquipmentReturns: items,
		Signature:        payload.Signature,
		SignedAt:         &signedAt,
	}
	if err := s.returnRepository.CreateReturnRequest(ctx, request); err != nil {
		return entities.ReturnRequest{}, err
	}

	equipmentIDs := make([]string, 0, len(items))
	for _, item := range items {
		equipmentIDs = append(equipmentIDs, item.EquipmentID)
	}
	document := entities.HandoverDocument{
		ID:             uuid.NewString(),
		Type:           entities.DocumentReturn,
		CollaboratorID: payload.CollaboratorID,
		EquipmentIDs:   equipmentIDs,
		Signature:      payload.Signature,
		CreatedAt:      signedAt,
	}
	if err := s.handoverRepository.CreateDocument(ctx, document); err != nil {
		return entities.ReturnRequest{}, err
	}

	if _, err := s.collaboratorRepository.UpdateProfile(ctx, payload.CollaboratorID, func(p *entities.CollaboratorProfile) error {
		p.Status = entities.CollaboratorLeaving
		return nil
	}); err != nil {
		return entities.ReturnRequest{}, err
	}

	s.logger.Info("departure recorded",
		zap.String("return_request_id", request.ID),
		zap.String("collaborator_id", payload.CollaboratorID),
		zap.Int("items", len(items)),
	)
	return request, nil
}

func (s *DepartureService) GetReturnRequests(ctx context.Context) []entities.ReturnRequest {
	return s.returnRepository.GetReturnRequests(ctx)
}

func (s *DepartureService) FindReturnRequest(ctx context.Context, id string) (entities.ReturnRequest, error) {
	return s.returnRepository.FindReturnRequest(ctx, id)
}

// ProcessReturn reconciles the recorded per-item conditions back onto the
// equipment pool: ok returns to available, damaged goes to maintenance,
// written-off goes to rebut. The request moves to completed and the
// collaborator to departed.
func (s *DepartureService) ProcessReturn(ctx context.Context, id string) (entities.ReturnRequest, error) {
	request, err := s.returnRepository.FindReturnRequest(ctx, id)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	if request.Status != entities.ReturnPending {
		return entities.ReturnRequest{}, apperrors.NewValidationError("return request is %s, only pending returns can be processed", request.Status)
	}

	for _, item := range request.EquipmentReturns {
		item := item
		if _, err := s.equipmentRepository.UpdateEquipment(ctx, item.EquipmentID, func(e *entities.Equipment) error {
			e.AssignedTo = ""
			e.CompanyID = ""
			e.AssignedDate = nil
			switch item.Status {
			case entities.ConditionMaintenance:
				e.Status = entities.EquipmentMaintenance
			case entities.ConditionRebut:
				e.Status = entities.EquipmentRebut
			default:
				e.Status = entities.EquipmentAvailable
			}
			return nil
		}); err != nil {
			s.logger.Error("return reconciliation failed",
				zap.String("return_request_id", id),
				zap.String("equipment_id", item.EquipmentID),
				zap.Error(err),
			)
			return entities.ReturnRequest{}, err
		}

		handover := entities.Handover{
			ID:          uuid.NewString(),
			EquipmentID: item.EquipmentID,
			UserID:      request.CollaboratorID,
			Date:        s.now(),
			Signature:   request.Signature,
			Type:        entities.HandoverReturn,
			Notes:       item.Notes,
		}
		if err := s.handoverRepository.CreateHandover(ctx, handover); err != nil {
			s.logger.Error("failed to record return handover", zap.String("equipment_id", item.EquipmentID), zap.Error(err))
		}
	}

	updated, err := s.returnRepository.UpdateReturnRequest(ctx, id, func(r *entities.ReturnRequest) error {
		r.Status = entities.ReturnCompleted
		return nil
	})
	if err != nil {
		return entities.ReturnRequest{}, err
	}

	if _, err := s.collaboratorRepository.UpdateProfile(ctx, request.CollaboratorID, func(p *entities.CollaboratorProfile) error {
		p.Status = entities.CollaboratorDeparted
		return nil
	}); err != nil {
		return entities.ReturnRequest{}, err
	}

	s.logger.Info("return processed",
		zap.String("return_request_id", id),
		zap.String("collaborator_id", request.CollaboratorID),
	)
	return updated, nil
}
