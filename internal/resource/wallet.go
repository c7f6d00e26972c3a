package resource

import (
	"context"

	"github.com/mealdesk/admin-gateway/internal/export"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// WalletHistory represents a single wallet credit/debit transaction
type WalletHistory struct {
	ID              string  `json:"_id"`
	User            UserRef `json:"userId"`
	Wallet          Wallet  `json:"walletId"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	TransactionDate string  `json:"transactionDate"`
	Description     string  `json:"description,omitempty"`
}

// Wallet represents the wallet a transaction belongs to
type Wallet struct {
	ID       string  `json:"_id"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// Key returns the transaction's unique identifier
func (history WalletHistory) Key() string {
	return history.ID
}

// Matches searches customer name/email, transaction type and description
func (history WalletHistory) Matches(query string) bool {
	return contains(history.User.Username, query) ||
		contains(history.User.Email, query) ||
		contains(history.Type, query) ||
		contains(history.Description, query)
}

// ExportRow flattens the transaction for exports
func (history WalletHistory) ExportRow() export.Row {
	return export.Row{
		"Customer":    dash(history.User.Username),
		"Email":       dash(history.User.Email),
		"Type":        dash(history.Type),
		"Amount":      money(history.Amount),
		"Currency":    dash(history.Wallet.Currency),
		"Balance":     money(history.Wallet.Balance),
		"Date":        dash(history.TransactionDate),
		"Description": dash(history.Description),
	}
}

// WalletHistories describes the read-only wallet transaction resource
func WalletHistories() Descriptor[WalletHistory] {
	return Descriptor[WalletHistory]{
		Name:       "wallet-histories",
		Sheet:      "WalletHistories",
		ExportBase: "wallet-history-details",
		Columns:    []string{"Customer", "Email", "Type", "Amount", "Currency", "Balance", "Date", "Description"},
		List: func(ctx context.Context, scope *upstream.Scope) ([]WalletHistory, error) {
			return upstream.List[WalletHistory](ctx, scope, "/wallet/histories/all")
		},
	}
}
