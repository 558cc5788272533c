// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID   string
	Currency entity.Currency // Optional filter for usage counts
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single catalog category with the user's usage.
type CategoryOutput struct {
	Value       string
	Label       string
	Icon        string
	Color       string
	RecordCount int
}

// ListCategoriesUseCase handles listing the category catalog.
type ListCategoriesUseCase struct {
	catalog    []entity.CatalogCategory
	recordRepo adapter.RecordRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(catalog []entity.CatalogCategory, recordRepo adapter.RecordRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		catalog:    catalog,
		recordRepo: recordRepo,
	}
}

// Execute returns the catalog in its configured order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Currency != "" && !input.Currency.IsValid() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordCurrency,
			"currency must be 'USD' or 'INR'",
			domainerror.ErrInvalidCurrency,
		)
	}

	counts := make(map[string]int)
	if input.UserID != "" && uc.recordRepo != nil {
		records, err := uc.recordRepo.FindByUser(ctx, input.UserID, adapter.RecordFilter{Currency: input.Currency})
		if err != nil {
			// Usage counts are optional; the catalog is still served.
			slog.Warn("Failed to count category usage", "user_id", input.UserID, "error", err)
		}
		for _, group := range budgeting.GroupByCategory(records) {
			counts[group.Key] = group.Count
		}
	}

	output := make([]*CategoryOutput, 0, len(uc.catalog))
	for _, c := range uc.catalog {
		output = append(output, &CategoryOutput{
			Value:       c.Value,
			Label:       c.Label,
			Icon:        c.Icon,
			Color:       c.Color,
			RecordCount: counts[budgeting.Normalize(c.Value)],
		})
	}

	return &ListCategoriesOutput{Categories: output}, nil
}
