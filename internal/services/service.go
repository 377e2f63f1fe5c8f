package services

import (
	"context"

	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes the labor service catalog operations.
type Service interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, input CreateInput) (*models.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Service, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
}

// UpdateInput carries a partial field set; nil means "leave untouched".
type UpdateInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	return fields
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]models.Service, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// an empty table serializes as [], not null
	if rows == nil {
		rows = []models.Service{}
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Service, error) {
	svc := &models.Service{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	return s.repo.Create(ctx, svc)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Service not found")
		}
		return nil, err
	}
	return svc, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Service, error) {
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
		return pkgerrors.New(pkgerrors.CodeNotFound, "Service not found")
	}
	return nil
}
