package sales

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmoreira/workshop-backend/internal/customers"
	"github.com/dmoreira/workshop-backend/internal/parts"
	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const numberPrefixFormat = "20060102"

// Service exposes the point-of-sale operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Sale, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	List(ctx context.Context) ([]models.Sale, error)
}

// CreateInput is a sale as submitted by the point of sale. Line prices
// and subtotals are trusted as sent.
type CreateInput struct {
	CustomerID *uuid.UUID
	Items      []models.SaleItem
}

type service struct {
	client    *db.Client
	repo      *Repository
	parts     *parts.Repository
	customers *customers.Repository
	now       func() time.Time
}

func NewService(client *db.Client, repo *Repository, partsRepo *parts.Repository, customersRepo *customers.Repository) Service {
	return &service{
		client:    client,
		repo:      repo,
		parts:     partsRepo,
		customers: customersRepo,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Sale, error) {
	now := s.now()

	number, err := s.nextSaleNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshotCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	var partsTotal, servicesTotal decimal.Decimal
	for _, item := range input.Items {
		switch item.Type {
		case models.SaleItemTypePart:
			partsTotal = partsTotal.Add(item.Subtotal)
		case models.SaleItemTypeService:
			servicesTotal = servicesTotal.Add(item.Subtotal)
		}
	}

	sale := &models.Sale{
		ID:               uuid.New(),
		SaleNumber:       number,
		Date:             now,
		CustomerID:       input.CustomerID,
		CustomerData:     snapshot,
		Items:            input.Items,
		SubtotalParts:    partsTotal,
		SubtotalServices: servicesTotal,
		Total:            partsTotal.Add(servicesTotal),
	}

	err = s.client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, item := range input.Items {
			if item.Type != models.SaleItemTypePart {
				continue
			}
			if err := s.parts.WithTx(tx).DecrementStock(ctx, item.ItemID, item.Quantity); err != nil {
				return err
			}
		}
		return s.repo.WithTx(tx).Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// nextSaleNumber issues the next number under the current day's prefix.
// The read is not serialized against concurrent writers; the number is
// allocated before the insert transaction opens.
func (s *service) nextSaleNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := now.Format(numberPrefixFormat)
	last, err := s.repo.LastNumberForPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if len(last) > len(prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// snapshotCustomer freezes the customer's contact data. A customer id
// that matches no record is kept on the sale with no snapshot.
func (s *service) snapshotCustomer(ctx context.Context, id *uuid.UUID) (*models.CustomerSnapshot, error) {
	if id == nil {
		return nil, nil
	}
	customer, err := s.customers.FindByID(ctx, *id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &models.CustomerSnapshot{
		Name:    customer.Name,
		Phone:   customer.Phone,
		Email:   customer.Email,
		Address: customer.Address,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Sale not found")
		}
		return nil, err
	}
	return sale, nil
}

func (s *service) List(ctx context.Context) ([]models.Sale, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// an empty table serializes as [], not null
	if rows == nil {
		rows = []models.Sale{}
	}
	return rows, nil
}
