package models

import "time"

type Collector struct {
	ID        int64     `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CollectorPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}
