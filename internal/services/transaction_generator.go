package services

import (
	"time"

	"activity-feed/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	generatedEventType     = "TRANSACTION_CREATED"
	generatedSourceService = "activity-feed-cli"
	defaultGenerateWindow  = 30 * 24 * time.Hour
)

// MerchantInfo is a counterparty sample events are attributed to
type MerchantInfo struct {
	Name    string
	Product models.Product
	MCCCode string
}

// GenerateOptions narrows the events a generator produces. Zero fields are
// picked at random.
type GenerateOptions struct {
	UserID    string
	Count     int
	Product   models.Product
	Type      models.TransactionType
	Status    models.TransactionStatus
	Currency  models.Currency
	Amount    *decimal.Decimal
	Start     time.Time
	End       time.Time
	Duplicate bool
}

// TransactionGeneratorInterface produces sample events for the publish command
type TransactionGeneratorInterface interface {
	Generate(opts GenerateOptions) []*models.TransactionEvent
}

type transactionGenerator struct {
	merchantPool []MerchantInfo
	faker        *gofakeit.Faker
}

// NewTransactionGenerator creates a generator of sample transaction events
func NewTransactionGenerator() TransactionGeneratorInterface {
	return newSeededTransactionGenerator(0)
}

// seed 0 draws a random seed
func newSeededTransactionGenerator(seed uint64) *transactionGenerator {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(seed),
	}
}

func initializeMerchantPool() []MerchantInfo {
	return []MerchantInfo{
		// Cards
		{"Walmart Supercenter", models.ProductCards, "5411"},
		{"Whole Foods Market", models.ProductCards, "5411"},
		{"Starbucks", models.ProductCards, "5814"},
		{"Chipotle Mexican Grill", models.ProductCards, "5812"},
		{"Uber", models.ProductCards, "4121"},
		{"Shell", models.ProductCards, "5542"},
		{"Amazon.com", models.ProductCards, "5942"},
		{"Best Buy", models.ProductCards, "5732"},
		{"Netflix", models.ProductCards, "7832"},
		{"Delta Air Lines", models.ProductCards, "3000"},

		// Payments
		{"AT&T", models.ProductPayments, "4814"},
		{"Comcast Xfinity", models.ProductPayments, "4899"},
		{"PG&E", models.ProductPayments, "4900"},
		{"Water Department", models.ProductPayments, "4900"},
		{"ACME Corporation Payroll", models.ProductPayments, "6011"},

		// Loans
		{"Home Mortgage Servicing", models.ProductLoans, "6012"},
		{"Auto Loan Center", models.ProductLoans, "6012"},
		{"Student Loan Services", models.ProductLoans, "6012"},

		// Savings
		{"High Yield Savings", models.ProductSavings, "6011"},
		{"Holiday Savings Club", models.ProductSavings, "6011"},

		// Investments
		{"Index Fund Brokerage", models.ProductInvestments, "6211"},
		{"Retirement Account", models.ProductInvestments, "6211"},

		// Crypto
		{"Coin Exchange", models.ProductCrypto, "6051"},
		{"Digital Wallet", models.ProductCrypto, "6051"},
	}
}

// SelectRandomMerchant picks a merchant of product, or of any product when
// product is empty or unknown to the pool.
func (g *transactionGenerator) SelectRandomMerchant(product models.Product) MerchantInfo {
	candidates := g.merchantPool
	if product != "" {
		filtered := make([]MerchantInfo, 0, len(g.merchantPool))
		for _, merchant := range g.merchantPool {
			if merchant.Product == product {
				filtered = append(filtered, merchant)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	return candidates[g.faker.Number(0, len(candidates)-1)]
}

// GenerateTransactionType draws a type for product.
// Distribution: 60% payment, 15% transfer, 10% deposit, 8% withdrawal, 5% refund, 2% fee.
// Savings and investments only deposit or withdraw.
func (g *transactionGenerator) GenerateTransactionType(product models.Product) models.TransactionType {
	roll := g.faker.Float64()

	if product == models.ProductSavings || product == models.ProductInvestments {
		if roll < 0.70 {
			return models.TransactionTypeDeposit
		}
		return models.TransactionTypeWithdrawal
	}

	switch {
	case roll < 0.60:
		return models.TransactionTypePayment
	case roll < 0.75:
		return models.TransactionTypeTransfer
	case roll < 0.85:
		return models.TransactionTypeDeposit
	case roll < 0.93:
		return models.TransactionTypeWithdrawal
	case roll < 0.98:
		return models.TransactionTypeRefund
	default:
		return models.TransactionTypeFee
	}
}

// GenerateStatus draws a status: mostly completed, a tail of the rest.
func (g *transactionGenerator) GenerateStatus() models.TransactionStatus {
	roll := g.faker.Float64()

	switch {
	case roll < 0.85:
		return models.TransactionStatusCompleted
	case roll < 0.92:
		return models.TransactionStatusPending
	case roll < 0.95:
		return models.TransactionStatusProcessing
	case roll < 0.98:
		return models.TransactionStatusFailed
	default:
		return models.TransactionStatusCancelled
	}
}

// GenerateAmount draws an amount from the range usual for product and txType
func (g *transactionGenerator) GenerateAmount(product models.Product, txType models.TransactionType) decimal.Decimal {
	if txType == models.TransactionTypeFee {
		fees := []float64{2.50, 3.00, 5.00, 10.00, 15.00, 25.00, 35.00}
		return decimal.NewFromFloat(fees[g.faker.Number(0, len(fees)-1)])
	}

	minValue, maxValue := getAmountRange(product)
	return decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)
}

func getAmountRange(product models.Product) (float64, float64) {
	ranges := map[models.Product][2]float64{
		models.ProductCards:       {5.00, 450.00},
		models.ProductPayments:    {25.00, 800.00},
		models.ProductLoans:       {150.00, 2500.00},
		models.ProductSavings:     {50.00, 5000.00},
		models.ProductInvestments: {100.00, 10000.00},
		models.ProductCrypto:      {10.00, 3000.00},
	}

	if r, exists := ranges[product]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateTimestamp draws a whole-second UTC instant in [start, end)
func (g *transactionGenerator) GenerateTimestamp(start, end time.Time) time.Time {
	seconds := int(end.Sub(start) / time.Second)
	if seconds <= 1 {
		return start.UTC().Truncate(time.Second)
	}
	offset := time.Duration(g.faker.Number(0, seconds-1)) * time.Second
	return start.Add(offset).UTC().Truncate(time.Second)
}

// Generate builds opts.Count events for one user. With Duplicate every
// event is followed by an identical copy.
func (g *transactionGenerator) Generate(opts GenerateOptions) []*models.TransactionEvent {
	if opts.Count <= 0 {
		return []*models.TransactionEvent{}
	}

	userID := opts.UserID
	if userID == "" {
		userID = uuid.NewString()
	}
	end := opts.End
	if end.IsZero() {
		end = time.Now().UTC()
	}
	start := opts.Start
	if start.IsZero() || !start.Before(end) {
		start = end.Add(-defaultGenerateWindow)
	}

	capacity := opts.Count
	if opts.Duplicate {
		capacity *= 2
	}
	events := make([]*models.TransactionEvent, 0, capacity)
	for i := 0; i < opts.Count; i++ {
		event := g.createEvent(userID, opts, start, end)
		events = append(events, event)
		if opts.Duplicate {
			events = append(events, event)
		}
	}
	return events
}

func (g *transactionGenerator) createEvent(userID string, opts GenerateOptions, start, end time.Time) *models.TransactionEvent {
	merchant := g.SelectRandomMerchant(opts.Product)

	product := opts.Product
	if product == "" {
		product = merchant.Product
	}
	txType := opts.Type
	if txType == "" {
		txType = g.GenerateTransactionType(product)
	}
	status := opts.Status
	if status == "" {
		status = g.GenerateStatus()
	}
	currency := opts.Currency
	if currency == "" {
		currency = models.CurrencyUSD
	}
	amount := g.GenerateAmount(product, txType)
	if opts.Amount != nil {
		amount = *opts.Amount
	}

	occurredAt := g.GenerateTimestamp(start, end)
	emittedAt := time.Now().UTC()

	return &models.TransactionEvent{
		EventID:        uuid.NewString(),
		EventType:      generatedEventType,
		SourceService:  generatedSourceService,
		EventTimestamp: &emittedAt,
		Payload: &models.TransactionPayload{
			TransactionID: uuid.NewString(),
			UserID:        userID,
			Product:       product,
			Type:          txType,
			Status:        status,
			Amount:        amount,
			Currency:      currency,
			Description:   describe(txType, merchant),
			OccurredAt:    &occurredAt,
			Metadata: map[string]any{
				"merchant_name": merchant.Name,
				"mcc_code":      merchant.MCCCode,
				"channel":       g.faker.RandomString([]string{"web", "mobile", "pos", "atm"}),
			},
		},
	}
}

func describe(txType models.TransactionType, merchant MerchantInfo) string {
	switch txType {
	case models.TransactionTypeRefund:
		return "Refund - " + merchant.Name
	case models.TransactionTypeFee:
		return "Service Fee - Banking"
	case models.TransactionTypeDeposit:
		return "Deposit - " + merchant.Name
	case models.TransactionTypeWithdrawal:
		return "Withdrawal - " + merchant.Name
	case models.TransactionTypeTransfer:
		return "Transfer - " + merchant.Name
	default:
		return "Purchase at " + merchant.Name
	}
}
