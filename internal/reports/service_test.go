package reports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmoreira/workshop-backend/internal/sales"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *sales.Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Sale{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return sales.NewRepository(conn)
}

func seedSale(t *testing.T, repo *sales.Repository, day time.Time, partsTotal, servicesTotal int64) {
	t.Helper()
	parts := decimal.NewFromInt(partsTotal)
	services := decimal.NewFromInt(servicesTotal)
	err := repo.Create(context.Background(), &models.Sale{
		ID:               uuid.New(),
		SaleNumber:       day.Format("20060102") + "001",
		Date:             day,
		Items:            models.SaleItemList{},
		SubtotalParts:    parts,
		SubtotalServices: services,
		Total:            parts.Add(services),
	})
	require.NoError(t, err)
}

func TestSalesSummaryWindowIsInclusive(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo)

	day := func(d int) time.Time {
		return time.Date(2026, 4, d, 10, 0, 0, 0, time.UTC)
	}
	seedSale(t, repo, day(9), 100, 0)  // before the window
	seedSale(t, repo, day(10), 60, 40) // window start
	seedSale(t, repo, day(12), 0, 80)  // inside
	seedSale(t, repo, day(14), 30, 0)  // window end, late in the day
	seedSale(t, repo, day(15), 500, 0) // after the window

	summary, err := svc.Sales(context.Background(),
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, 3, summary.TotalSales)
	require.Len(t, summary.Sales, 3)
	require.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(210)))
	require.True(t, summary.PartsRevenue.Equal(decimal.NewFromInt(90)))
	require.True(t, summary.ServicesRevenue.Equal(decimal.NewFromInt(120)))
	require.Equal(t, "2026-04-10", summary.Period.Start)
	require.Equal(t, "2026-04-14", summary.Period.End)
}

func TestSalesSummaryEmptyWindow(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo)

	summary, err := svc.Sales(context.Background(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Zero(t, summary.TotalSales)
	require.NotNil(t, summary.Sales)
	require.Empty(t, summary.Sales)
	require.True(t, summary.TotalRevenue.IsZero())
}
