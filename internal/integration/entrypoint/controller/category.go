package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget-service/internal/application/usecase/category"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/dto"
)

// CategoryController handles the category catalog endpoint.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{listUseCase: listUseCase}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var query dto.ListCategoriesQuery
	_ = ctx.ShouldBindQuery(&query)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID:   userID,
		Currency: entity.Currency(query.Currency),
	})
	if err != nil {
		var recErr *domainerror.RecordError
		if errors.As(err, &recErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: recErr.Message,
				Code:  string(recErr.Code),
			})
			return
		}
		slog.Error("Failed to list categories", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}
