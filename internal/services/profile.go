package services

import (
	"context"

	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfiles(ctx context.Context, filter utils.Filter, hasEquipment *bool) ([]entities.CollaboratorProfile, int)
	FindProfile(ctx context.Context, id string) (entities.CollaboratorProfile, error)
	ProfileEquipment(ctx context.Context, id string) ([]entities.Equipment, error)
}

// ProfileService is the read side of collaborator profiles shared by the
// onboarding and departure flows.
type ProfileService struct {
	collaboratorRepository repositories.CollaboratorRepositoryInterface
	equipmentRepository    repositories.EquipmentRepositoryInterface
}

func NewProfileService(
	collaboratorRepository repositories.CollaboratorRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
) *ProfileService {
	return &ProfileService{
		collaboratorRepository: collaboratorRepository,
		equipmentRepository:    equipmentRepository,
	}
}

func (s *ProfileService) GetProfiles(ctx context.Context, filter utils.Filter, hasEquipment *bool) ([]entities.CollaboratorProfile, int) {
	matched := FilterProfiles(s.collaboratorRepository.GetProfiles(ctx), UserQuery{
		Text:      filter.Search,
		CompanyID: filter.CompanyID,
	})

	if hasEquipment != nil {
		equipment := s.equipmentRepository.GetEquipment(ctx)
		filtered := matched[:0]
		for _, p := range matched {
			if HasEquipment(equipment, p.ID) == *hasEquipment {
				filtered = append(filtered, p)
			}
		}
		matched = filtered
	}

	return utils.Page(matched, filter), len(matched)
}

func (s *ProfileService) FindProfile(ctx context.Context, id string) (entities.CollaboratorProfile, error) {
	return s.collaboratorRepository.FindProfile(ctx, id)
}

func (s *ProfileService) ProfileEquipment(ctx context.Context, id string) ([]entities.Equipment, error) {
	if _, err := s.collaboratorRepository.FindProfile(ctx, id); err != nil {
		return nil, err
	}
	return s.equipmentRepository.ListByAssignee(ctx, id), nil
}
