package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/budget-service/internal/application/usecase/record"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/middleware"
)

// RecordController handles record endpoints.
type RecordController struct {
	listUseCase   *record.ListRecordsUseCase
	createUseCase *record.CreateRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	deleteUseCase *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	createUseCase *record.CreateRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /records requests.
func (c *RecordController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var query dto.ListRecordsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{
		UserID:   userID,
		Currency: entity.Currency(query.Currency),
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output.Records))
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRecordFields),
			Details: err.Error(),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRecordDate),
		})
		return
	}

	input := record.CreateRecordInput{
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		Category:      req.Category,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Currency:      entity.Currency(req.Currency),
		FromAccount:   req.FromAccount,
		ToAccount:     req.ToAccount,
	}
	if req.Type != nil {
		recordType := entity.RecordType(*req.Type)
		input.Type = &recordType
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// Update handles PUT /records/:id requests.
func (c *RecordController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordID),
		})
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingRecordFields),
			Details: err.Error(),
		})
		return
	}

	input := record.UpdateRecordInput{
		UserID:      userID,
		RecordID:    recordID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
	}
	if req.Type != nil {
		recordType := entity.RecordType(*req.Type)
		input.Type = &recordType
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidRecordDate),
			})
			return
		}
		input.Date = &date
	}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}
	if req.Currency != nil {
		currency := entity.Currency(*req.Currency)
		input.Currency = &currency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordID),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		UserID:   userID,
		RecordID: recordID,
	}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecordError maps record errors to HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		status := http.StatusBadRequest
		if recErr.Code == domainerror.ErrCodeRecordNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	slog.Error("Record request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// requireUser reads the authenticated user or answers 401.
func requireUser(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", false
	}
	return userID, true
}
