package domain

import "context"

type Item struct {
	ID    int    `gorm:"primary_key;auto_increment;column:id" json:"itemId"`
	Name  string `gorm:"type:varchar(255);unique;not null;column:name" json:"itemName"`
	Price int    `gorm:"column:price;not null;default:0" json:"price"`
}

type ItemStats struct {
	ID     int  `gorm:"primary_key;auto_increment;column:id" json:"-"`
	ItemID int  `gorm:"column:item_id;not null;unique" json:"-"`
	Power  int  `gorm:"column:power;not null;default:0" json:"power"`
	Health int  `gorm:"column:health;not null;default:0" json:"health"`
	Item   Item `gorm:"foreignkey:ItemID;references:ID" json:"-"`
}

type CreateItemRequest struct {
	Name  string `json:"itemName"`
	Stats Stats  `json:"stats"`
	Price int    `json:"price"`
}

type UpdateItemRequest struct {
	Name  string `json:"itemName"`
	Stats Stats  `json:"stats"`
}

type ItemSummary struct {
	ItemID int    `json:"itemId"`
	Name   string `json:"itemName"`
	Price  int    `json:"price"`
}

type ItemDetailResponse struct {
	ItemID int    `json:"itemId"`
	Name   string `json:"itemName"`
	Stats  Stats  `json:"stats"`
	Price  int    `json:"price"`
}

type ItemRepository interface {
	CreateItem(ctx context.Context, name string, stats Stats, price int) (*Item, error)
	UpdateItem(ctx context.Context, itemID int, name string, stats Stats) (*Item, error)
	ListItems(ctx context.Context) ([]ItemSummary, error)
	GetItemDetail(ctx context.Context, itemID int) (*ItemDetailResponse, error)
}
