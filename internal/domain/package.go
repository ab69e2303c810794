package domain

import "time"

// Package represents a bookable jet-ski tour product
// Каталог управляется внешним административным процессом, здесь только чтение
type Package struct {
	ID              string
	Name            string
	DurationMinutes int
	PriceAED        float64
	Description     string
	ImageURL        *string
	MaxParticipants int
	IsActive        bool
	DisplayOrder    int
	CreatedAt       time.Time
}
