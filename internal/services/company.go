package services

import (
	"context"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompanyServiceInterface interface {
	GetCompanies(ctx context.Context) []entities.Company
	FindCompany(ctx context.Context, id string) (entities.Company, error)
	CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (entities.Company, error)
	UpdateCompany(ctx context.Context, id string, payload dto.UpdateCompanyDTO) (entities.Company, error)
}

type CompanyService struct {
	companyRepository repositories.CompanyRepositoryInterface
	logger            *zap.Logger
}

func NewCompanyService(companyRepository repositories.CompanyRepositoryInterface, logger *zap.Logger) *CompanyService {
	return &CompanyService{companyRepository: companyRepository, logger: logger}
}

func (s *CompanyService) GetCompanies(ctx context.Context) []entities.Company {
	return s.companyRepository.GetCompanies(ctx)
}

func (s *CompanyService) FindCompany(ctx context.Context, id string) (entities.Company, error) {
	return s.companyRepository.FindCompany(ctx, id)
}

func (s *CompanyService) CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (entities.Company, error) {
	if err := requireFields(map[string]string{"name": payload.Name}); err != nil {
		return entities.Company{}, err
	}

	company := entities.Company{
		ID:      uuid.NewString(),
		Name:    payload.Name,
		Address: payload.Address.String,
	}
	if err := s.companyRepository.CreateCompany(ctx, company); err != nil {
		return entities.Company{}, err
	}

	s.logger.Info("company created", zap.String("id", company.ID), zap.String("name", company.Name))
	return company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id string, payload dto.UpdateCompanyDTO) (entities.Company, error) {
	return s.companyRepository.UpdateCompany(ctx, id, func(c *entities.Company) error {
		if payload.Name != nil {
			c.Name = *payload.Name
		}
		if payload.Address.Valid {
			c.Address = payload.Address.String
		}
		return requireFields(map[string]string{"name": c.Name})
	})
}
