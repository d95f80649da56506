package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"activity-feed/internal/dto"
	"activity-feed/internal/errors"
	"activity-feed/internal/models"
	"activity-feed/internal/pagination"
	"activity-feed/internal/repositories"
	"activity-feed/internal/services"
	"activity-feed/internal/validation"

	"github.com/labstack/echo/v4"
)

// ActivityFeedHandler serves the read side of the activity feed
type ActivityFeedHandler struct {
	transactionService services.TransactionServiceInterface
}

func NewActivityFeedHandler(transactionService services.TransactionServiceInterface) *ActivityFeedHandler {
	return &ActivityFeedHandler{transactionService: transactionService}
}

// RegisterRoutes mounts the feed endpoints on g, normally /api/v1/activity-feed
func (h *ActivityFeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users/:userId/transactions", h.ListUserTransactions)
	g.GET("/transactions/:id", h.GetTransaction)
}

// ListUserTransactions returns one page of a user's feed.
//
// GET /users/:userId/transactions
//
//	400 VALIDATION_001 bad query parameter
//	400 VALIDATION_007 unparseable date
//	400 VALIDATION_008 conflicting filters
//	400 PAGINATION_001 invalid cursor
//	500 SYSTEM_002 primary store failure
//	503 SYSTEM_007 search index failure
func (h *ActivityFeedHandler) ListUserTransactions(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("userId is required"))
	}

	var params dto.TransactionQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	filters, err := toTransactionFilters(userID, params)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	page, err := h.transactionService.GetTransactions(c.Request().Context(), filters)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserIDRequired):
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidFilter):
			return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails(err.Error()))
		case stderrors.Is(err, pagination.ErrInvalidCursor):
			return SendError(c, errors.PaginationInvalidCursor)
		default:
			return SendBackendError(c, err)
		}
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSON(http.StatusOK, page)
}

// GetTransaction returns a single transaction by id.
//
// GET /transactions/:id
//
//	404 TRANSACTION_001 no such transaction
//	500 SYSTEM_002 primary store failure
func (h *ActivityFeedHandler) GetTransaction(c echo.Context) error {
	transactionID := strings.TrimSpace(c.Param("id"))
	if transactionID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("id is required"))
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request().Context(), transactionID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendBackendError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSON(http.StatusOK, transaction)
}

func toTransactionFilters(userID string, params dto.TransactionQueryParams) (models.TransactionFilters, error) {
	startDate, err := parseDateParam("startDate", params.StartDate, false)
	if err != nil {
		return models.TransactionFilters{}, err
	}
	endDate, err := parseDateParam("endDate", params.EndDate, true)
	if err != nil {
		return models.TransactionFilters{}, err
	}

	return models.TransactionFilters{
		UserID:        userID,
		Product:       models.Product(params.Product),
		Type:          models.TransactionType(params.Type),
		Status:        models.TransactionStatus(params.Status),
		Currency:      models.Currency(params.Currency),
		StartDate:     startDate,
		EndDate:       endDate,
		SearchText:    params.SearchText,
		MetadataField: params.MetadataField,
		MetadataValue: params.MetadataValue,
		Cursor:        params.Cursor,
		Limit:         params.Limit,
		SortBy:        params.SortBy,
		SortDirection: params.SortDirection,
	}, nil
}
