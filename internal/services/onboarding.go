package services

import (
	"context"
	"strings"
	"time"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OnboardingServiceInterface interface {
	GetRequests(ctx context.Context) []entities.CollaboratorRequest
	FindRequest(ctx context.Context, id string) (entities.CollaboratorRequest, error)
	Submit(ctx context.Context, payload dto.CreateCollaboratorRequestDTO) (entities.CollaboratorRequest, error)
	PrefillFromEmail(ctx context.Context, email string) (dto.PrefillDTO, error)
	Validate(ctx context.Context, id string, payload dto.ValidateRequestDTO) (entities.CollaboratorRequest, error)
	SelectEquipment(ctx context.Context, id string, payload dto.SelectEquipmentDTO) (entities.CollaboratorRequest, error)
	AvailableEquipment(ctx context.Context, requestID string) []entities.Equipment
	GenerateHandover(ctx context.Context, id string) (dto.HandoverDraftDTO, error)
	Complete(ctx context.Context, id string, payload dto.CompleteRequestDTO) (entities.CollaboratorProfile, error)
}

// OnboardingService drives the collaborator request lifecycle:
// pending -> validated -> equipment_assigned -> ready -> completed.
// The progression is linear, no skips and no rollback.
type OnboardingService struct {
	collaboratorRepository repositories.CollaboratorRepositoryInterface
	equipmentRepository    repositories.EquipmentRepositoryInterface
	handoverRepository     repositories.HandoverRepositoryInterface
	companyRepository      repositories.CompanyRepositoryInterface
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewOnboardingService(
	collaboratorRepository repositories.CollaboratorRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	logger *zap.Logger,
) *OnboardingService {
	return &OnboardingService{
		collaboratorRepository: collaboratorRepository,
		equipmentRepository:    equipmentRepository,
		handoverRepository:     handoverRepository,
		companyRepository:      companyRepository,
		logger:                 logger,
		now:                    time.Now,
	}
}

func (s *OnboardingService) WithClock(now func() time.Time) *OnboardingService {
	s.now = now
	return s
}

func (s *OnboardingService) GetRequests(ctx context.Context) []entities.CollaboratorRequest {
	return s.collaboratorRepository.GetRequests(ctx)
}

func (s *OnboardingService) FindRequest(ctx context.Context, id string) (entities.CollaboratorRequest, error) {
	return s.collaboratorRepository.FindRequest(ctx, id)
}

func (s *OnboardingService) Submit(ctx context.Context, payload dto.CreateCollaboratorRequestDTO) (entities.CollaboratorRequest, error) {
	if err := requireFields(map[string]string{
		"filiale":   payload.Filiale,
		"direction": payload.Direction,
		"poste":     payload.Poste,
		"nom":       payload.Nom,
		"prenom":    payload.Prenom,
	}); err != nil {
		return entities.CollaboratorRequest{}, err
	}

	logiciels := make([]entities.Software, 0, len(payload.Logiciels))
	for _, sw := range payload.Logiciels {
		logiciels = append(logiciels, entities.Software{
			ID:     uuid.NewString(),
			Name:   sw.Name,
			Rights: sw.Rights,
		})
	}

	request := entities.CollaboratorRequest{
		ID:                    uuid.NewString(),
		Type:                  entities.RequestType(payload.Type),
		ReplacedEmail:         payload.ReplacedEmail,
		Filiale:               payload.Filiale,
		Direction:             payload.Direction,
		Poste:                 payload.Poste,
		Nom:                   payload.Nom,
		Prenom:                payload.Prenom,
		Email:                 payload.Email,
		GroupesMail:           payload.GroupesMail,
		PCType:                entities.PCType(payload.PCType),
		EcransSupplementaires: payload.EcransSupplementaires,
		TelephoneType:         entities.PhoneType(payload.TelephoneType),
		AutresMateriels:       payload.AutresMateriels,
		Logiciels:             logiciels,
		Status:                entities.RequestPending,
		CreatedAt:             s.now(),
	}

	if err := s.collaboratorRepository.CreateRequest(ctx, request); err != nil {
		return entities.CollaboratorRequest{}, err
	}

	s.logger.Info("onboarding request submitted",
		zap.String("id", request.ID),
		zap.String("type", string(request.Type)),
		zap.String("collaborator", request.Prenom+" "+request.Nom),
	)
	return request, nil
}

// PrefillFromEmail serves replacement requests. Organizational and software
// fields are copied from the departing collaborator's profile, equipment
// assignments are not.
func (s *OnboardingService) PrefillFromEmail(ctx context.Context, email string) (dto.PrefillDTO, error) {
	profile, err := s.collaboratorRepository.FindProfileByEmail(ctx, email)
	if err != nil {
		return dto.PrefillDTO{}, err
	}

	return dto.PrefillDTO{
		Filiale:     profile.Filiale,
		Direction:   profile.Direction,
		Poste:       profile.Poste,
		GroupesMail: profile.GroupesMail,
		Logiciels:   profile.Logiciels,
	}, nil
}

// Validate moves pending -> validated, but only once every requested
// equipment line and every software line has been acknowledged.
func (s *OnboardingService) Validate(ctx context.Context, id string, payload dto.ValidateRequestDTO) (entities.CollaboratorRequest, error) {
	return s.collaboratorRepository.UpdateRequest(ctx, id, func(r *entities.CollaboratorRequest) error {
		if r.Status != entities.RequestPending {
			return apperrors.NewValidationError("request is %s, only pending requests can be validated", r.Status)
		}

		checkedEquipment := toSet(payload.EquipmentChecked)
		for _, line := range r.EquipmentLines() {
			if !checkedEquipment[line] {
				return apperrors.NewValidationError("equipment line %q has not been checked off", line)
			}
		}

		checkedSoftware := toSet(payload.SoftwareChecked)
		for _, sw := range r.Logiciels {
			if !checkedSoftware[sw.ID] {
				return apperrors.NewValidationError("software %q has not been checked off", sw.Name)
			}
		}

		now := s.now()
		r.Status = entities.RequestValidated
		r.ValidatedAt = &now
		r.ValidatedBy = payload.ValidatedBy
		return nil
	})
}

// AvailableEquipment lists equipment selectable for the given request:
// available in the store and not reserved by another in-flight request.
func (s *OnboardingService) AvailableEquipment(ctx context.Context, requestID string) []entities.Equipment {
	exclude := make(map[string]bool)
	for _, other := range s.collaboratorRepository.GetRequests(ctx) {
		if other.ID == requestID {
			continue
		}
		if other.Status == entities.RequestEquipmentAssigned || other.Status == entities.RequestReady {
			for _, eqID := range other.EquipmentIDs {
				exclude[eqID] = true
			}
		}
	}
	return AvailableForSelection(s.equipmentRepository.GetEquipment(ctx), exclude)
}

// SelectEquipment moves validated -> equipment_assigned. The selection is
// recorded on the request; the actual assignment happens on completion,
// when the collaborator profile exists.
func (s *OnboardingService) SelectEquipment(ctx context.Context, id string, payload dto.SelectEquipmentDTO) (entities.CollaboratorRequest, error) {
	if len(payload.EquipmentIDs) == 0 {
		return entities.CollaboratorRequest{}, apperrors.NewValidationError("at least one equipment item must be selected")
	}

	selectable := make(map[string]bool)
	for _, e := range s.AvailableEquipment(ctx, id) {
		selectable[e.ID] = true
	}

	seen := make(map[string]bool)
	for _, eqID := range payload.EquipmentIDs {
		if seen[eqID] {
			return entities.CollaboratorRequest{}, apperrors.NewValidationError("equipment %q selected twice", eqID)
		}
		seen[eqID] = true
		if !selectable[eqID] {
			if _, err := s.equipmentRepository.FindEquipment(ctx, eqID); err != nil {
				return entities.CollaboratorRequest{}, err
			}
			return entities.CollaboratorRequest{}, apperrors.NewValidationError("equipment %q is not available for selection", eqID)
		}
	}

	return s.collaboratorRepository.UpdateRequest(ctx, id, func(r *entities.CollaboratorRequest) error {
		if r.Status != entities.RequestValidated {
			return apperrors.NewValidationError("request is %s, equipment can only be assigned to validated requests", r.Status)
		}
		r.EquipmentIDs = payload.EquipmentIDs
		r.Status = entities.RequestEquipmentAssigned
		return nil
	})
}

// GenerateHandover moves equipment_assigned -> ready and returns the
// pending handover draft. The immutable signed document is only created on
// completion.
func (s *OnboardingService) GenerateHandover(ctx context.Context, id string) (dto.HandoverDraftDTO, error) {
	request, err := s.collaboratorRepository.UpdateRequest(ctx, id, func(r *entities.CollaboratorRequest) error {
		if r.Status != entities.RequestEquipmentAssigned {
			return apperrors.NewValidationError("request is %s, a handover needs assigned equipment", r.Status)
		}
		r.Status = entities.RequestReady
		return nil
	})
	if err != nil {
		return dto.HandoverDraftDTO{}, err
	}

	draft := dto.HandoverDraftDTO{
		RequestID:        request.ID,
		CollaboratorName: request.Prenom + " " + request.Nom,
		Filiale:          request.Filiale,
	}
	for _, eqID := range request.EquipmentIDs {
		if e, err := s.equipmentRepository.FindEquipment(ctx, eqID); err == nil {
			draft.Equipment = append(draft.Equipment, e)
		}
	}
	return draft, nil
}

// Complete finishes the onboarding: signature required, an active
// collaborator profile is created, the selected equipment is assigned to it
// and the signed handover document is stored.
func (s *OnboardingService) Complete(ctx context.Context, id string, payload dto.CompleteRequestDTO) (entities.CollaboratorProfile, error) {
	if IsBlankSignature(payload.Signature) {
		return entities.CollaboratorProfile{}, apperrors.NewValidationError("a signature is required to complete the handover")
	}

	request, err := s.collaboratorRepository.FindRequest(ctx, id)
	if err != nil {
		return entities.CollaboratorProfile{}, err
	}
	if request.Status != entities.RequestReady {
		return entities.CollaboratorProfile{}, apperrors.NewValidationError("request is %s, only ready requests can be completed", request.Status)
	}

	email := payload.Email
	if email == "" {
		email = request.Email
	}

	profile := entities.CollaboratorProfile{
		ID:          uuid.NewString(),
		RequestID:   request.ID,
		Nom:         request.Nom,
		Prenom:      request.Prenom,
		Email:       email,
		Telephone:   payload.Telephone,
		Filiale:     request.Filiale,
		Direction:   request.Direction,
		Poste:       request.Poste,
		GroupesMail: request.GroupesMail,
		Logiciels:   request.Logiciels,
		CreatedAt:   s.now(),
		Status:      entities.CollaboratorActive,
	}

	// The new collaborator's company follows the request filiale, same
	// matching rule as direct assignment.
	companyID := ""
	for _, company := range s.companyRepository.GetCompanies(ctx) {
		if strings.EqualFold(company.Name, request.Filiale) {
			companyID = company.ID
			break
		}
	}

	// One locked mutation covers every selected item. Nothing else is
	// written before it succeeds, so a failed completion leaves no orphan
	// profile and no partial assignment, and the request can be retried.
	assignedAt := s.now()
	if _, err := s.equipmentRepository.AssignBatch(ctx, request.EquipmentIDs, profile.ID, companyID, assignedAt); err != nil {
		s.logger.Error("onboarding assignment failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return entities.CollaboratorProfile{}, err
	}

	if err := s.collaboratorRepository.CreateProfile(ctx, profile); err != nil {
		return entities.CollaboratorProfile{}, err
	}

	for _, eqID := range request.EquipmentIDs {
		handover := entities.Handover{
			ID:          uuid.NewString(),
			EquipmentID: eqID,
			UserID:      profile.ID,
			CompanyID:   companyID,
			Date:        assignedAt,
			Signature:   payload.Signature,
			Type:        entities.HandoverAssignment,
		}
		if err := s.handoverRepository.CreateHandover(ctx, handover); err != nil {
			s.logger.Error("failed to record handover",
				zap.String("request_id", id),
				zap.String("equipment_id", eqID),
				zap.Error(err),
			)
		}
	}

	document := entities.HandoverDocument{
		ID:             uuid.NewString(),
		Type:           entities.DocumentHandover,
		CollaboratorID: profile.ID,
		EquipmentIDs:   request.EquipmentIDs,
		Signature:      payload.Signature,
		CreatedAt:      s.now(),
	}
	if err := s.handoverRepository.CreateDocument(ctx, document); err != nil {
		return entities.CollaboratorProfile{}, err
	}

	if _, err := s.collaboratorRepository.UpdateRequest(ctx, id, func(r *entities.CollaboratorRequest) error {
		r.Status = entities.RequestCompleted
		return nil
	}); err != nil {
		return entities.CollaboratorProfile{}, err
	}

	s.logger.Info("onboarding completed",
		zap.String("request_id", id),
		zap.String("collaborator_id", profile.ID),
		zap.Int("equipment_count", len(request.EquipmentIDs)),
	)
	return profile, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
