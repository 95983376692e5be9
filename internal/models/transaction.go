package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

// Deposit is append-only: a member handing in weighed waste, credited
// to their balance at the catalog buy price in effect at deposit time.
type Deposit struct {
	ID          int64           `json:"id" db:"id"`
	CustomerID  int64           `json:"customer_id" db:"customer_id"`
	OfficerID   int64           `json:"officer_id" db:"officer_id"`
	WasteTypeID int64           `json:"waste_type_id" db:"waste_type_id"`
	Weight      decimal.Decimal `json:"weight" db:"weight"`
	Value       decimal.Decimal `json:"value" db:"value"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// Withdrawal starts pending and transitions exactly once to completed
// or rejected. The balance is debited only on completion.
type Withdrawal struct {
	ID         int64            `json:"id" db:"id"`
	CustomerID int64            `json:"customer_id" db:"customer_id"`
	OfficerID  int64            `json:"officer_id" db:"officer_id"`
	Amount     decimal.Decimal  `json:"amount" db:"amount"`
	Status     WithdrawalStatus `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

// CollectorSale is append-only: resale of accumulated waste to an
// external collector. It never touches member balances.
type CollectorSale struct {
	ID          int64           `json:"id" db:"id"`
	CollectorID int64           `json:"collector_id" db:"collector_id"`
	WasteTypeID int64           `json:"waste_type_id" db:"waste_type_id"`
	Weight      decimal.Decimal `json:"weight" db:"weight"`
	SalePrice   decimal.Decimal `json:"sale_price" db:"sale_price"`
	Total       decimal.Decimal `json:"total" db:"total"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
