package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product string

const (
	ProductPayments    Product = "PAYMENTS"
	ProductCards       Product = "CARDS"
	ProductLoans       Product = "LOANS"
	ProductSavings     Product = "SAVINGS"
	ProductInvestments Product = "INVESTMENTS"
	ProductCrypto      Product = "CRYPTO"
)

type TransactionType string

const (
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeFee        TransactionType = "FEE"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
	TransactionStatusCancelled  TransactionStatus = "CANCELLED"
	TransactionStatusRefunded   TransactionStatus = "REFUNDED"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyBRL Currency = "BRL"
	CurrencyBTC Currency = "BTC"
	CurrencyETH Currency = "ETH"
)

// SortKeySeparator joins the timestamp and the transaction id inside a sort key.
const SortKeySeparator = "#"

// SortKeyTimeLayout renders every timestamp with the same width so that
// lexicographic order matches chronological order.
const SortKeyTimeLayout = "2006-01-02T15:04:05Z"

var (
	ErrInvalidProduct           = errors.New("invalid product")
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidCurrency          = errors.New("invalid currency")
)

// Transaction is the persisted activity record. It is created once from an
// inbound event and never updated afterwards.
type Transaction struct {
	UserID        string
	SK            string
	ID            string
	Product       Product
	Type          TransactionType
	Status        TransactionStatus
	Amount        decimal.Decimal
	Currency      Currency
	Description   string
	OccurredAt    time.Time
	CreatedAt     time.Time
	SourceService string
	EventID       string
	TransactionID string
	// Metadata holds the event metadata serialized as a JSON object, or "" when absent.
	Metadata string
}

// FormatSortKeyTime renders t the way it appears in a sort key.
func FormatSortKeyTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(SortKeyTimeLayout)
}

// BuildSortKey returns the sort key for a transaction occurring at occurredAt.
func BuildSortKey(occurredAt time.Time, transactionID string) string {
	return FormatSortKeyTime(occurredAt) + SortKeySeparator + transactionID
}

// ParseSortKey splits a sort key back into its timestamp and transaction id.
func ParseSortKey(sk string) (time.Time, string, bool) {
	ts, id, found := strings.Cut(sk, SortKeySeparator)
	if !found || id == "" {
		return time.Time{}, "", false
	}
	occurredAt, err := time.Parse(SortKeyTimeLayout, ts)
	if err != nil {
		return time.Time{}, "", false
	}
	return occurredAt, id, true
}

func IsValidProduct(product Product) bool {
	switch product {
	case ProductPayments, ProductCards, ProductLoans, ProductSavings, ProductInvestments, ProductCrypto:
		return true
	default:
		return false
	}
}

func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypePayment, TransactionTypeTransfer, TransactionTypeDeposit,
		TransactionTypeWithdrawal, TransactionTypeRefund, TransactionTypeFee:
		return true
	default:
		return false
	}
}

func IsValidTransactionStatus(status TransactionStatus) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusProcessing, TransactionStatusCompleted,
		TransactionStatusFailed, TransactionStatusCancelled, TransactionStatusRefunded:
		return true
	default:
		return false
	}
}

func IsValidCurrency(currency Currency) bool {
	switch currency {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyBRL, CurrencyBTC, CurrencyETH:
		return true
	default:
		return false
	}
}
