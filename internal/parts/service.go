package parts

import (
	"context"

	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ThresholdSource yields the configured low-stock threshold.
type ThresholdSource interface {
	LowStockThreshold(ctx context.Context) (int, error)
}

// Service exposes the parts inventory operations.
type Service interface {
	List(ctx context.Context) ([]models.Part, error)
	ListLowStock(ctx context.Context) ([]models.Part, error)
	Create(ctx context.Context, input CreateInput) (*models.Part, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Part, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Part, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateInput struct {
	Name          string
	Description   *string
	ReferenceCode string
	CostPrice     decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int
}

// UpdateInput carries a partial field set; nil means "leave untouched".
type UpdateInput struct {
	Name          *string
	Description   *string
	ReferenceCode *string
	CostPrice     *decimal.Decimal
	SalePrice     *decimal.Decimal
	StockQuantity *int
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ReferenceCode != nil {
		fields["reference_code"] = *in.ReferenceCode
	}
	if in.CostPrice != nil {
		fields["cost_price"] = *in.CostPrice
	}
	if in.SalePrice != nil {
		fields["sale_price"] = *in.SalePrice
	}
	if in.StockQuantity != nil {
		fields["stock_quantity"] = *in.StockQuantity
	}
	return fields
}

type service struct {
	repo       *Repository
	thresholds ThresholdSource
}

func NewService(repo *Repository, thresholds ThresholdSource) Service {
	return &service{repo: repo, thresholds: thresholds}
}

func (s *service) List(ctx context.Context) ([]models.Part, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ensureSlice(rows), nil
}

func (s *service) ListLowStock(ctx context.Context) ([]models.Part, error) {
	threshold, err := s.thresholds.LowStockThreshold(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListAtOrBelow(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return ensureSlice(rows), nil
}

// ensureSlice keeps empty listings serializing as [], not null.
func ensureSlice(rows []models.Part) []models.Part {
	if rows == nil {
		return []models.Part{}
	}
	return rows
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Part, error) {
	part := &models.Part{
		ID:            uuid.New(),
		Name:          input.Name,
		Description:   input.Description,
		ReferenceCode: input.ReferenceCode,
		CostPrice:     input.CostPrice,
		SalePrice:     input.SalePrice,
		StockQuantity: input.StockQuantity,
	}
	return s.repo.Create(ctx, part)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Part not found")
		}
		return nil, err
	}
	return part, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Part, error) {
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
		return pkgerrors.New(pkgerrors.CodeNotFound, "Part not found")
	}
	return nil
}
