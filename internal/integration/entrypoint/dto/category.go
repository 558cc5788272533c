package dto

import (
	"github.com/finance-tracker/budget-service/internal/application/usecase/category"
)

// ListCategoriesQuery holds the query parameters of GET /categories.
type ListCategoriesQuery struct {
	Currency string `form:"currency"`
}

// CategoryResponse represents a catalog category in API responses.
type CategoryResponse struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	RecordCount int    `json:"record_count"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts the use case output to a CategoryListResponse DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	items := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		items[i] = CategoryResponse{
			Value:       c.Value,
			Label:       c.Label,
			Icon:        c.Icon,
			Color:       c.Color,
			RecordCount: c.RecordCount,
		}
	}
	return CategoryListResponse{Categories: items}
}
