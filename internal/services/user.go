package services

import (
	"context"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter utils.Filter) ([]dto.UserWithEquipmentDTO, int, error)
	FindUser(ctx context.Context, id string) (entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (entities.User, error)
	UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	userRepository      repositories.UserRepositoryInterface
	companyRepository   repositories.CompanyRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewUserService(
	userRepository repositories.UserRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepository:      userRepository,
		companyRepository:   companyRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

// GetUsers returns the filtered user list with each user's equipment ids
// computed from the authoritative assignment relation.
func (s *UserService) GetUsers(ctx context.Context, filter utils.Filter) ([]dto.UserWithEquipmentDTO, int, error) {
	matched := FilterUsers(s.userRepository.GetUsers(ctx), UserQuery{
		Text:      filter.Search,
		CompanyID: filter.CompanyID,
	})
	paged := utils.Page(matched, filter)

	out := make([]dto.UserWithEquipmentDTO, 0, len(paged))
	for _, u := range paged {
		row := dto.UserWithEquipmentDTO{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			CompanyID:    u.CompanyID,
			EquipmentIDs: []string{},
		}
		for _, e := range s.equipmentRepository.ListByAssignee(ctx, u.ID) {
			row.EquipmentIDs = append(row.EquipmentIDs, e.ID)
		}
		out = append(out, row)
	}
	return out, len(matched), nil
}

func (s *UserService) FindUser(ctx context.Context, id string) (entities.User, error) {
	return s.userRepository.FindUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (entities.User, error) {
	if _, err := s.companyRepository.FindCompany(ctx, payload.CompanyID); err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Email:     payload.Email,
		CompanyID: payload.CompanyID,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	s.logger.Info("user created", zap.String("id", user.ID), zap.String("email", user.Email))
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (entities.User, error) {
	if payload.CompanyID != nil {
		if _, err := s.companyRepository.FindCompany(ctx, *payload.CompanyID); err != nil {
			return entities.User{}, err
		}
	}

	return s.userRepository.UpdateUser(ctx, id, func(u *entities.User) error {
		if payload.Name != nil {
			u.Name = *payload.Name
		}
		if payload.Email != nil {
			u.Email = *payload.Email
		}
		if payload.CompanyID != nil {
			u.CompanyID = *payload.CompanyID
		}
		return nil
	})
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.userRepository.DeleteUser(ctx, id)
}
