package db

import (
	"testing"

	"github.com/finance-tracker/ledger/config"
)

func TestOpenSQLite(t *testing.T) {
	database, err := Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file::memory:",
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer database.Close()

	if !database.HealthCheck() {
		t.Error("expected health check to pass")
	}
	if name := database.DB().Dialector.Name(); name != "sqlite" {
		t.Errorf("expected sqlite dialector, got %q", name)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected an error for an unsupported driver")
	}
}
