package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID          int64           `json:"id" db:"id"`
	Code        string          `json:"code" db:"code"`
	Name        string          `json:"name" db:"name"`
	NIK         string          `json:"nik" db:"nik"`
	Address     string          `json:"address" db:"address"`
	Institution string          `json:"institution" db:"institution"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// CustomerPatch carries only the fields a partial update supplies;
// nil fields are left untouched.
type CustomerPatch struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Institution *string `json:"institution,omitempty"`
}
