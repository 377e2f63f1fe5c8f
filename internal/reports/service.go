package reports

import (
	"context"
	"time"

	"github.com/dmoreira/workshop-backend/internal/sales"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Period echoes the requested reporting window.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SalesSummary aggregates the sales recorded inside a date window,
// both endpoints inclusive.
type SalesSummary struct {
	TotalSales      int             `json:"total_sales"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PartsRevenue    decimal.Decimal `json:"parts_revenue"`
	ServicesRevenue decimal.Decimal `json:"services_revenue"`
	Sales           []models.Sale   `json:"sales"`
	Period          Period          `json:"period"`
}

// Service exposes the reporting operations.
type Service interface {
	Sales(ctx context.Context, start, end time.Time) (*SalesSummary, error)
}

type service struct {
	repo *sales.Repository
}

func NewService(repo *sales.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Sales(ctx context.Context, start, end time.Time) (*SalesSummary, error) {
	// the end date is inclusive, so query strictly before the next day
	rows, err := s.repo.ListBetween(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		TotalSales: len(rows),
		Sales:      rows,
		Period: Period{
			Start: start.Format(dateLayout),
			End:   end.Format(dateLayout),
		},
	}
	if summary.Sales == nil {
		summary.Sales = []models.Sale{}
	}
	for _, sale := range rows {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Total)
		summary.PartsRevenue = summary.PartsRevenue.Add(sale.SubtotalParts)
		summary.ServicesRevenue = summary.ServicesRevenue.Add(sale.SubtotalServices)
	}
	return summary, nil
}
