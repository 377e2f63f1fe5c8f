package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmoreira/workshop-backend/pkg/migrate"
)

func TestMigrationDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestSalesMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_sales_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS sales",
		"sale_number text NOT NULL",
		"customer_data jsonb",
		"items jsonb NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_sales_sale_number",
		"CREATE INDEX IF NOT EXISTS idx_sales_date",
		"DROP TABLE IF EXISTS sales",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSettingsMigrationEnforcesUniqueKey(t *testing.T) {
	content := readMigration(t, "*_create_settings_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS settings",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_settings_key",
		"DROP TABLE IF EXISTS settings",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matches %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
