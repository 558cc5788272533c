package insight

import (
	"context"

	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// GetAvailableCategoriesOutput lists the catalog categories still without a budget.
type GetAvailableCategoriesOutput struct {
	Currency   entity.Currency
	Period     budgeting.Period
	Categories []entity.CatalogCategory
}

// GetAvailableCategoriesUseCase finds the categories a new budget may use.
type GetAvailableCategoriesUseCase struct {
	loader  *LedgerLoader
	catalog []entity.CatalogCategory
}

// NewGetAvailableCategoriesUseCase creates a new GetAvailableCategoriesUseCase instance.
func NewGetAvailableCategoriesUseCase(loader *LedgerLoader, catalog []entity.CatalogCategory) *GetAvailableCategoriesUseCase {
	return &GetAvailableCategoriesUseCase{
		loader:  loader,
		catalog: catalog,
	}
}

// Execute returns the unbudgeted catalog categories of the month.
func (uc *GetAvailableCategoriesUseCase) Execute(ctx context.Context, input Query) (*GetAvailableCategoriesOutput, error) {
	q, period, err := uc.loader.Resolve(input)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.loader.Load(ctx, q.UserID, q.Currency)
	if err != nil {
		return nil, err
	}

	return &GetAvailableCategoriesOutput{
		Currency:   q.Currency,
		Period:     period,
		Categories: budgeting.AvailableCategoriesFor(ledger.BudgetsIn(period), uc.catalog),
	}, nil
}
