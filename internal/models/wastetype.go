package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WasteType is a catalog entry: BuyPrice is what the cooperative pays
// depositors per kg, SellPrice the default resale price to collectors.
type WasteType struct {
	ID        int64           `json:"id" db:"id"`
	Code      string          `json:"code" db:"code"`
	Name      string          `json:"name" db:"name"`
	BuyPrice  decimal.Decimal `json:"buy_price" db:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price" db:"sell_price"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type WasteTypePatch struct {
	Name      *string          `json:"name,omitempty"`
	BuyPrice  *decimal.Decimal `json:"buy_price,omitempty"`
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
}
