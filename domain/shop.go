package domain

import "context"

// BuyOrderLine is a single line of a batch purchase. Lines are applied
// sequentially in request order; each affordability check runs against
// the balance left by the previous line.
type BuyOrderLine struct {
	ItemName string `json:"item_code"`
	Count    int    `json:"count"`
}

type SellResultResponse struct {
	ItemName string `json:"itemName"`
	Sold     int    `json:"soldCount"`
	Money    int    `json:"money"`
}

type ShopRepository interface {
	BuyItems(ctx context.Context, username string, characterID int, lines []BuyOrderLine) error
	SellItem(ctx context.Context, username string, characterID int, itemID int, count int) (*SellResultResponse, error)
}
