package domain

import "time"

// Browse events emitted for the analytics stream.

type ProductView struct {
	ProductID   string
	ProductName string
	Price       float64
	ViewedAt    time.Time
}

type OutfitRequest struct {
	AnchorID     string
	AnchorName   string
	Occasion     string
	Budget       float64
	TotalPrice   float64
	NComplements int
	RequestedAt  time.Time
}
