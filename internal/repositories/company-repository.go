package repositories

import (
	"context"
	"sort"

	"handover-system/internal/entities"
	"handover-system/pkg/apperrors"
)

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context) []entities.Company
	FindCompany(ctx context.Context, id string) (entities.Company, error)
	CreateCompany(ctx context.Context, company entities.Company) error
	UpdateCompany(ctx context.Context, id string, mutate func(*entities.Company) error) (entities.Company, error)
}

type CompanyRepository struct {
	store *Store
}

func NewCompanyRepository(store *Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

func (r *CompanyRepository) GetCompanies(ctx context.Context) []entities.Company {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.Company, 0, len(r.store.companies))
	for _, c := range r.store.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *CompanyRepository) FindCompany(ctx context.Context, id string) (entities.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.companies[id]
	if !ok {
		return entities.Company{}, apperrors.NewNotFoundError("company", id)
	}
	return c, nil
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, company entities.Company) error {
	r.store.mu.Lock()
	if _, exists := r.store.companies[company.ID]; exists {
		r.store.mu.Unlock()
		return apperrors.NewConflictError("company %q already exists", company.ID)
	}
	r.store.companies[company.ID] = company
	r.store.mu.Unlock()

	r.store.publish(ctx, "company", "created", company.ID)
	return nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, id string, mutate func(*entities.Company) error) (entities.Company, error) {
	r.store.mu.Lock()
	c, ok := r.store.companies[id]
	if !ok {
		r.store.mu.Unlock()
		return entities.Company{}, apperrors.NewNotFoundError("company", id)
	}
	if err := mutate(&c); err != nil {
		r.store.mu.Unlock()
		return entities.Company{}, err
	}
	c.ID = id
	r.store.companies[id] = c
	r.store.mu.Unlock()

	r.store.publish(ctx, "company", "updated", id)
	return c, nil
}
