package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"activity-feed/internal/dto"
	"activity-feed/internal/models"
	"activity-feed/internal/repositories"
)

var (
	ErrUserIDRequired = errors.New("userId is required")
	ErrInvalidFilter  = errors.New("invalid filter")
)

type TransactionService struct {
	storeRepo repositories.TransactionStoreRepositoryInterface
	router    TransactionQueryRouterInterface
}

func NewTransactionService(
	storeRepo repositories.TransactionStoreRepositoryInterface,
	router TransactionQueryRouterInterface,
) TransactionServiceInterface {
	return &TransactionService{
		storeRepo: storeRepo,
		router:    router,
	}
}

func (s *TransactionService) GetTransactions(ctx context.Context, filters models.TransactionFilters) (*dto.PageResponse, error) {
	filters.ApplyDefaults()
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	page, err := s.router.Route(ctx, filters)
	if err != nil {
		return nil, err
	}

	response := &dto.PageResponse{
		Content: make([]dto.TransactionResponse, 0, len(page.Items)),
		HasMore: page.HasMore(),
	}
	for i := range page.Items {
		response.Content = append(response.Content, ToTransactionResponse(&page.Items[i]))
	}
	response.Size = len(response.Content)
	if page.HasMore() {
		nextCursor := page.NextCursor
		response.NextCursor = &nextCursor
	}

	return response, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	if transactionID == "" {
		return nil, repositories.ErrTransactionNotFound
	}

	transaction, err := s.storeRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

func validateFilters(filters models.TransactionFilters) error {
	if filters.UserID == "" {
		return ErrUserIDRequired
	}
	if (filters.MetadataField == "") != (filters.MetadataValue == "") {
		return fmt.Errorf("%w: metadataField and metadataValue must be provided together", ErrInvalidFilter)
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidFilter)
	}
	if filters.Limit > models.MaxPageLimit {
		return fmt.Errorf("%w: limit must be at most %d", ErrInvalidFilter, models.MaxPageLimit)
	}
	if !models.IsSortableField(filters.SortBy) {
		return fmt.Errorf("%w: unsupported sortBy %q", ErrInvalidFilter, filters.SortBy)
	}
	if filters.SortDirection != models.SortDirectionAsc && filters.SortDirection != models.SortDirectionDesc {
		return fmt.Errorf("%w: sortDirection must be ASC or DESC", ErrInvalidFilter)
	}
	return nil
}

// ToTransactionResponse maps a stored transaction to its API representation.
func ToTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	response := dto.TransactionResponse{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		Product:       string(transaction.Product),
		Type:          string(transaction.Type),
		Status:        string(transaction.Status),
		Amount:        transaction.Amount.String(),
		Currency:      string(transaction.Currency),
		Description:   transaction.Description,
		OccurredAt:    transaction.OccurredAt,
		CreatedAt:     transaction.CreatedAt,
		SourceService: transaction.SourceService,
		EventID:       transaction.EventID,
	}
	if transaction.Metadata != "" && json.Valid([]byte(transaction.Metadata)) {
		response.Metadata = json.RawMessage(transaction.Metadata)
	}
	return response
}
