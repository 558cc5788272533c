package db

import (
	"context"
	"testing"
	"time"

	"github.com/finance-tracker/budget-service/config"
	"github.com/finance-tracker/budget-service/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:          "sqlite",
		URL:             "file::memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	if !database.DB().Migrator().HasTable(&model.RecordModel{}) || !database.DB().Migrator().HasTable(&model.BudgetModel{}) {
		t.Error("expected records and budgets tables")
	}
	if !database.HealthCheck(context.Background()) {
		t.Error("expected healthy database")
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
