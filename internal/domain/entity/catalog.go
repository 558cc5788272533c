package entity

// Currency is an ISO currency code supported by the application.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"

	DefaultCurrency = CurrencyUSD
)

// SupportedCurrencies lists every currency a record or budget may carry.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyINR}

// IsValid reports whether the currency is supported.
func (c Currency) IsValid() bool {
	for _, supported := range SupportedCurrencies {
		if c == supported {
			return true
		}
	}
	return false
}

// PaymentMethod identifies how a record was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid reports whether the payment method is known.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCreditCard, PaymentMethodCash, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// CatalogCategory is an entry of the static category catalog.
type CatalogCategory struct {
	Value string
	Label string
	Icon  string
	Color string
}

// DefaultCatalog returns the predefined categories offered to users.
func DefaultCatalog() []CatalogCategory {
	return []CatalogCategory{
		{Value: "salary", Label: "Salary", Icon: "💰", Color: "#10b981"},
		{Value: "freelance", Label: "Freelance", Icon: "💼", Color: "#059669"},
		{Value: "investment", Label: "Investment", Icon: "📈", Color: "#0891b2"},
		{Value: "rent", Label: "Rent", Icon: "🏠", Color: "#ef4444"},
		{Value: "groceries", Label: "Groceries", Icon: "🛒", Color: "#dc2626"},
		{Value: "transportation", Label: "Transportation", Icon: "🚗", Color: "#ea580c"},
		{Value: "food", Label: "Food", Icon: "🍕", Color: "#3b82f6"},
		{Value: "utilities", Label: "Utilities", Icon: "⚡", Color: "#f59e0b"},
		{Value: "entertainment", Label: "Entertainment", Icon: "🎬", Color: "#8b5cf6"},
		{Value: "healthcare", Label: "Healthcare", Icon: "🏥", Color: "#db2777"},
		{Value: "shopping", Label: "Shopping", Icon: "🛍️", Color: "#be185d"},
		{Value: "education", Label: "Education", Icon: "📚", Color: "#7c3aed"},
		{Value: "travel", Label: "Travel", Icon: "✈️", Color: "#0369a1"},
		{Value: "other", Label: "Other", Icon: "📝", Color: "#6b7280"},
	}
}
