package sales

import (
	"fmt"
	"testing"
	"time"

	"github.com/dmoreira/workshop-backend/internal/customers"
	"github.com/dmoreira/workshop-backend/internal/parts"
	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Customer{}, &models.Part{}, &models.Sale{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

// newTestService wires the sale workflow over a shared in-memory
// database with a controllable clock.
func newTestService(t *testing.T, at time.Time) (*service, *gorm.DB) {
	t.Helper()
	conn := newTestDB(t)
	svc := &service{
		client:    db.NewWithConn(conn),
		repo:      NewRepository(conn),
		parts:     parts.NewRepository(conn),
		customers: customers.NewRepository(conn),
		now:       func() time.Time { return at },
	}
	return svc, conn
}
