package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	reportsvc "github.com/dmoreira/workshop-backend/internal/reports"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

type stubReports struct {
	start, end time.Time
	err        error
}

func (s *stubReports) Sales(_ context.Context, start, end time.Time) (*reportsvc.SalesSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.start, s.end = start, end
	return &reportsvc.SalesSummary{
		TotalSales:   1,
		TotalRevenue: decimal.NewFromInt(135),
		Sales:        []models.Sale{},
		Period: reportsvc.Period{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		},
	}, nil
}

func TestSalesReportSuccess(t *testing.T) {
	stub := &stubReports{}
	handler := SalesReport(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales?start_date=2026-04-10&end_date=2026-04-14", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.start.Format("2006-01-02") != "2026-04-10" || stub.end.Format("2006-01-02") != "2026-04-14" {
		t.Fatalf("dates not forwarded: %v %v", stub.start, stub.end)
	}
	if !strings.Contains(rec.Body.String(), "total_sales") {
		t.Fatalf("expected summary payload: %s", rec.Body.String())
	}
}

func TestSalesReportMissingDatesRejected(t *testing.T) {
	handler := SalesReport(&stubReports{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales?start_date=2026-04-10", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid date format") {
		t.Fatalf("expected date format message: %s", rec.Body.String())
	}
}

func TestSalesReportMalformedDateRejected(t *testing.T) {
	handler := SalesReport(&stubReports{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales?start_date=10/04/2026&end_date=2026-04-14", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
