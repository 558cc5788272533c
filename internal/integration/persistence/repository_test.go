package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
	"github.com/finance-tracker/budget-service/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(&model.RecordModel{}, &model.BudgetModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newRecord(userID string, amount int64, date time.Time, currency entity.Currency) *entity.Record {
	return entity.NewRecord(userID, "test", decimal.NewFromInt(amount), date, "food", entity.PaymentMethodCash, currency)
}

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordRepository(openTestDB(t))

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	older := newRecord("user-1", -25, jan, entity.CurrencyUSD)
	newer := newRecord("user-1", 100, feb, entity.CurrencyUSD)
	rupees := newRecord("user-1", -500, feb, entity.CurrencyINR)
	foreign := newRecord("user-2", -10, feb, entity.CurrencyUSD)
	newer.Amount = decimal.RequireFromString("100.55")

	for _, r := range []*entity.Record{older, newer, rupees, foreign} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("failed to create record: %v", err)
		}
	}

	t.Run("FindByUser orders newest first and filters currency", func(t *testing.T) {
		records, err := repo.FindByUser(ctx, "user-1", adapter.RecordFilter{Currency: entity.CurrencyUSD})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].ID != newer.ID {
			t.Errorf("expected newest record first")
		}
		if !records[0].Amount.Equal(decimal.RequireFromString("100.55")) {
			t.Errorf("expected amount 100.55, got %s", records[0].Amount)
		}
	})

	t.Run("FindByID is scoped to the owner", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, "user-2", older.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
		found, err := repo.FindByID(ctx, "user-1", older.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Date.Equal(jan) {
			t.Errorf("expected date %s, got %s", jan, found.Date)
		}
	})

	t.Run("Update persists changes", func(t *testing.T) {
		older.Category = "groceries"
		older.FromAccount = ""
		if err := repo.Update(ctx, older); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByID(ctx, "user-1", older.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Category != "groceries" {
			t.Errorf("expected category groceries, got %s", found.Category)
		}

		ghost := newRecord("user-1", -1, jan, entity.CurrencyUSD)
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound for unknown record, got %v", err)
		}
	})

	t.Run("Delete is permanent and scoped", func(t *testing.T) {
		if err := repo.Delete(ctx, "user-2", older.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, "user-1", older.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx, "user-1", older.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound on second delete, got %v", err)
		}
	})
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(openTestDB(t))

	food := entity.NewBudget("user-1", "Food", decimal.NewFromInt(300), 3, 2024, entity.CurrencyUSD)
	rent := entity.NewBudget("user-1", "rent", decimal.NewFromInt(900), 4, 2024, entity.CurrencyUSD)
	for _, b := range []*entity.Budget{food, rent} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
	}

	t.Run("FindByKey matches the normalized category", func(t *testing.T) {
		found, err := repo.FindByKey(ctx, adapter.BudgetKey{
			UserID: "user-1", Category: "food", Month: 3, Year: 2024, Currency: entity.CurrencyUSD,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != food.ID {
			t.Fatalf("expected the food budget, got %+v", found)
		}
		if found.Category != "Food" {
			t.Errorf("expected stored casing to be kept, got %s", found.Category)
		}
	})

	t.Run("FindByKey returns nil on a miss", func(t *testing.T) {
		found, err := repo.FindByKey(ctx, adapter.BudgetKey{
			UserID: "user-1", Category: "food", Month: 3, Year: 2024, Currency: entity.CurrencyINR,
		})
		if err != nil || found != nil {
			t.Errorf("expected nil, nil, got %+v, %v", found, err)
		}
	})

	t.Run("unique key rejects a case-only duplicate", func(t *testing.T) {
		dup := entity.NewBudget("user-1", "FOOD", decimal.NewFromInt(10), 3, 2024, entity.CurrencyUSD)
		if err := repo.Create(ctx, dup); err == nil {
			t.Error("expected unique constraint violation")
		}
	})

	t.Run("FindByUser filters period", func(t *testing.T) {
		budgets, err := repo.FindByUser(ctx, "user-1", adapter.BudgetFilter{Month: 4, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 1 || budgets[0].ID != rent.ID {
			t.Errorf("expected only rent, got %d budgets", len(budgets))
		}
	})

	t.Run("Update and Delete", func(t *testing.T) {
		food.Amount = decimal.NewFromInt(320)
		if err := repo.Update(ctx, food); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByID(ctx, "user-1", food.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Amount.Equal(decimal.NewFromInt(320)) {
			t.Errorf("expected 320, got %s", found.Amount)
		}

		if err := repo.Delete(ctx, "user-1", food.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, "user-1", food.ID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, "user-1", uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}
