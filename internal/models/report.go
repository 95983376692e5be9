package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindSale       TransactionKind = "sale"
)

// TransactionEntry is one row of a date-bounded report. Kind decides
// which of the optional display fields are populated: a withdrawal has
// no waste type or weight, a sale has no customer.
type TransactionEntry struct {
	ID            int64            `json:"id"`
	Kind          TransactionKind  `json:"kind"`
	CustomerName  string           `json:"customer_name,omitempty"`
	OfficerName   string           `json:"officer_name,omitempty"`
	CollectorName string           `json:"collector_name,omitempty"`
	WasteTypeName string           `json:"waste_type_name,omitempty"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	Value         decimal.Decimal  `json:"value"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CustomerSummary reports lifetime totals for one customer.
// LastActivity is the zero time when the customer has no deposits and
// no completed withdrawals yet.
type CustomerSummary struct {
	CustomerCode     string          `json:"customer_code"`
	CustomerName     string          `json:"customer_name"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	Balance          decimal.Decimal `json:"balance"`
	LastActivity     time.Time       `json:"last_activity"`
}

type DashboardSummary struct {
	TotalCustomers     int64           `json:"total_customers"`
	TotalOfficers      int64           `json:"total_officers"`
	TotalWasteTypes    int64           `json:"total_waste_types"`
	TotalDeposits      int64           `json:"total_deposits"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
	PendingWithdrawals int64           `json:"pending_withdrawals"`
	StockOnHand        decimal.Decimal `json:"stock_on_hand"`
	TotalWasteSold     decimal.Decimal `json:"total_waste_sold"`
	TotalProfit        decimal.Decimal `json:"total_profit"`
}
