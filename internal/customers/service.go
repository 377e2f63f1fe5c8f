package customers

import (
	"context"

	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
	"github.com/google/uuid"
)

// Service exposes the customer registry operations.
type Service interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, input CreateInput) (*models.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
}

// UpdateInput carries a partial field set; nil means "leave untouched".
type UpdateInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	return fields
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// an empty table serializes as [], not null
	if rows == nil {
		rows = []models.Customer{}
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Customer, error) {
	customer := &models.Customer{
		ID:      uuid.New(),
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	return s.repo.Create(ctx, customer)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Customer not found")
		}
		return nil, err
	}
	return customer, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Customer, error) {
	fields := input.fields()
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "No data to update")
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Customer not found")
	}
	return nil
}
