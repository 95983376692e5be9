package models

import "time"

type Officer struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	NIK         string    `json:"nik" db:"nik"`
	Address     string    `json:"address" db:"address"`
	Institution string    `json:"institution" db:"institution"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type OfficerPatch struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Institution *string `json:"institution,omitempty"`
}
