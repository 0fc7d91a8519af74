package services

import (
	"context"
	"strings"
	"time"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/apperrors"
	"handover-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter utils.Filter) ([]entities.Equipment, int, error)
	FindEquipment(ctx context.Context, id string) (entities.Equipment, error)
	FindBySerial(ctx context.Context, serial string) (entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
	AssignEquipment(ctx context.Context, id string, payload dto.AssignEquipmentDTO) (entities.Equipment, error)
	UnassignEquipment(ctx context.Context, id string) (entities.Equipment, error)
	SetMaintenance(ctx context.Context, id string) (entities.Equipment, error)
	RetireEquipment(ctx context.Context, id string) (entities.Equipment, error)
}

// EquipmentService owns the equipment lifecycle:
// available -> assigned -> available, any -> maintenance, any -> rebut.
// Rebut is terminal. Status and assignee are kept consistent on every path.
type EquipmentService struct {
	equipmentRepository    repositories.EquipmentRepositoryInterface
	userRepository         repositories.UserRepositoryInterface
	collaboratorRepository repositories.CollaboratorRepositoryInterface
	companyRepository      repositories.CompanyRepositoryInterface
	handoverRepository     repositories.HandoverRepositoryInterface
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	collaboratorRepository repositories.CollaboratorRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository:    equipmentRepository,
		userRepository:         userRepository,
		collaboratorRepository: collaboratorRepository,
		companyRepository:      companyRepository,
		handoverRepository:     handoverRepository,
		logger:                 logger,
		now:                    time.Now,
	}
}

// WithClock overrides the timestamp source, used by tests.
func (s *EquipmentService) WithClock(now func() time.Time) *EquipmentService {
	s.now = now
	return s
}

func (s *EquipmentService) GetEquipment(ctx context.Context, filter utils.Filter) ([]entities.Equipment, int, error) {
	all := s.equipmentRepository.GetEquipment(ctx)
	matched := FilterEquipment(all, EquipmentQuery{
		Text:      filter.Search,
		CompanyID: filter.CompanyID,
		Status:    entities.EquipmentStatus(filter.Status),
	})
	return utils.Page(matched, filter), len(matched), nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) FindBySerial(ctx context.Context, serial string) (entities.Equipment, error) {
	return s.equipmentRepository.FindBySerial(ctx, serial)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (entities.Equipment, error) {
	if err := requireFields(map[string]string{
		"name":          payload.Name,
		"serial_number": payload.SerialNumber,
		"category":      payload.Category,
	}); err != nil {
		return entities.Equipment{}, err
	}

	equipment := entities.Equipment{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(payload.Name),
		SerialNumber: strings.TrimSpace(payload.SerialNumber),
		Category:     strings.TrimSpace(payload.Category),
		Description:  payload.Description.String,
		Type:         payload.Type.String,
		Status:       entities.EquipmentAvailable,
	}
	if payload.PurchaseYear.Valid {
		equipment.PurchaseYear = int(payload.PurchaseYear.Int)
	}
	if payload.AmortizationEnd.Valid {
		end := payload.AmortizationEnd.Time
		equipment.AmortizationEnd = &end
	}

	if err := s.equipmentRepository.CreateEquipment(ctx, equipment); err != nil {
		s.logger.Error("failed to create equipment", zap.String("serial", equipment.SerialNumber), zap.Error(err))
		return entities.Equipment{}, err
	}

	s.logger.Info("equipment created", zap.String("id", equipment.ID), zap.String("serial", equipment.SerialNumber))
	return equipment, nil
}

// UpdateEquipment applies an edit-form patch. Changing the status through
// the form re-derives assignee consistency: any non-assigned status clears
// assignee, company and assignment date, while switching to assigned
// requires an assignee that exists. The company id always follows the
// assignee, the form cannot set it independently.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (entities.Equipment, error) {
	current, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}

	assignee := current.AssignedTo
	if payload.AssignedTo != nil {
		assignee = *payload.AssignedTo
	}
	status := current.Status
	if payload.Status != nil {
		status = entities.EquipmentStatus(*payload.Status)
	}

	companyID := ""
	if status == entities.EquipmentAssigned && assignee != "" {
		companyID, err = s.resolveAssigneeCompany(ctx, assignee)
		if err != nil {
			return entities.Equipment{}, err
		}
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, func(e *entities.Equipment) error {
		if payload.Name != nil {
			e.Name = strings.TrimSpace(*payload.Name)
		}
		if payload.SerialNumber != nil {
			e.SerialNumber = strings.TrimSpace(*payload.SerialNumber)
		}
		if payload.Category != nil {
			e.Category = strings.TrimSpace(*payload.Category)
		}
		if err := requireFields(map[string]string{
			"name":          e.Name,
			"serial_number": e.SerialNumber,
			"category":      e.Category,
		}); err != nil {
			return err
		}

		if payload.Description.Valid {
			e.Description = payload.Description.String
		}
		if payload.Type.Valid {
			e.Type = payload.Type.String
		}
		if payload.PurchaseYear.Valid {
			e.PurchaseYear = int(payload.PurchaseYear.Int)
		}
		if payload.AmortizationEnd.Valid {
			end := payload.AmortizationEnd.Time
			e.AmortizationEnd = &end
		}

		if payload.AssignedTo != nil {
			e.AssignedTo = *payload.AssignedTo
		}

		if payload.Status != nil {
			next := entities.EquipmentStatus(*payload.Status)
			if e.Status == entities.EquipmentRebut && next != entities.EquipmentRebut {
				return apperrors.NewValidationError("equipment is retired and cannot change status")
			}
			e.Status = next
		}

		switch e.Status {
		case entities.EquipmentAssigned:
			if e.AssignedTo == "" {
				return apperrors.NewValidationError("an assignee is required for assigned status")
			}
			e.CompanyID = companyID
			if e.AssignedDate == nil {
				now := s.now()
				e.AssignedDate = &now
			}
		default:
			e.AssignedTo = ""
			e.CompanyID = ""
			e.AssignedDate = nil
		}
		return nil
	})
	if err != nil {
		return entities.Equipment{}, err
	}

	s.logger.Info("equipment updated", zap.String("id", id), zap.String("status", string(updated.Status)))
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}

// AssignEquipment moves available equipment to assigned. The assignee may
// be a user or a collaborator; when they belong to a company the equipment
// inherits that company id. The assignment date defaults to now and may be
// supplied by the caller.
func (s *EquipmentService) AssignEquipment(ctx context.Context, id string, payload dto.AssignEquipmentDTO) (entities.Equipment, error) {
	if strings.TrimSpace(payload.AssigneeID) == "" {
		return entities.Equipment{}, apperrors.NewValidationError("an assignee is required")
	}

	companyID, err := s.resolveAssigneeCompany(ctx, payload.AssigneeID)
	if err != nil {
		return entities.Equipment{}, err
	}

	date := s.now()
	if payload.Date.Valid {
		date = payload.Date.Time
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, func(e *entities.Equipment) error {
		if e.Status != entities.EquipmentAvailable {
			return apperrors.NewValidationError("equipment %q is not available (status %s)", e.Name, e.Status)
		}
		e.Status = entities.EquipmentAssigned
		e.AssignedTo = payload.AssigneeID
		e.CompanyID = companyID
		d := date
		e.AssignedDate = &d
		return nil
	})
	if err != nil {
		return entities.Equipment{}, err
	}

	handover := entities.Handover{
		ID:          uuid.NewString(),
		EquipmentID: id,
		UserID:      payload.AssigneeID,
		CompanyID:   companyID,
		Date:        date,
		Signature:   payload.Signature,
		Type:        entities.HandoverAssignment,
		Notes:       payload.Notes,
	}
	if err := s.handoverRepository.CreateHandover(ctx, handover); err != nil {
		s.logger.Error("failed to record handover", zap.String("equipment_id", id), zap.Error(err))
	}

	s.logger.Info("equipment assigned",
		zap.String("id", id),
		zap.String("assignee", payload.AssigneeID),
		zap.String("company", companyID),
	)
	return updated, nil
}

// UnassignEquipment returns equipment to the pool, clearing assignee,
// company and assignment date together.
func (s *EquipmentService) UnassignEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	return s.equipmentRepository.UpdateEquipment(ctx, id, func(e *entities.Equipment) error {
		if e.Status == entities.EquipmentRebut {
			return apperrors.NewValidationError("equipment is retired and cannot change status")
		}
		if e.Status != entities.EquipmentAssigned {
			return apperrors.NewValidationError("equipment %q is not assigned", e.Name)
		}
		e.Status = entities.EquipmentAvailable
		e.AssignedTo = ""
		e.CompanyID = ""
		e.AssignedDate = nil
		return nil
	})
}

// SetMaintenance pulls equipment from service regardless of its current
// state, except retired equipment.
func (s *EquipmentService) SetMaintenance(ctx context.Context, id string) (entities.Equipment, error) {
	return s.equipmentRepository.UpdateEquipment(ctx, id, func(e *entities.Equipment) error {
		if e.Status == entities.EquipmentRebut {
			return apperrors.NewValidationError("equipment is retired and cannot change status")
		}
		e.Status = entities.EquipmentMaintenance
		e.AssignedTo = ""
		e.CompanyID = ""
		e.AssignedDate = nil
		return nil
	})
}

// RetireEquipment moves equipment to rebut. Terminal, no way back.
func (s *EquipmentService) RetireEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	return s.equipmentRepository.UpdateEquipment(ctx, id, func(e *entities.Equipment) error {
		if e.Status == entities.EquipmentRebut {
			return apperrors.NewValidationError("equipment is already retired")
		}
		e.Status = entities.EquipmentRebut
		e.AssignedTo = ""
		e.CompanyID = ""
		e.AssignedDate = nil
		return nil
	})
}

// resolveAssigneeCompany looks the assignee up among users first, then
// collaborator profiles. A profile's filiale is a company name; profiles
// whose filiale matches no registered company leave the company id empty.
func (s *EquipmentService) resolveAssigneeCompany(ctx context.Context, assigneeID string) (string, error) {
	if user, err := s.userRepository.FindUser(ctx, assigneeID); err == nil {
		return user.CompanyID, nil
	}
	if profile, err := s.collaboratorRepository.FindProfile(ctx, assigneeID); err == nil {
		for _, company := range s.companyRepository.GetCompanies(ctx) {
			if strings.EqualFold(company.Name, profile.Filiale) {
				return company.ID, nil
			}
		}
		return "", nil
	}
	return "", apperrors.NewNotFoundError("assignee", assigneeID)
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return apperrors.NewValidationError("field %q is required", name)
		}
	}
	return nil
}
