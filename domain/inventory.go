package domain

import "context"

// InventoryEntry holds the un-equipped copies of an item a character
// owns. An entry never persists with a count below one; it is deleted
// instead.
type InventoryEntry struct {
	ID          int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	CharacterID int       `gorm:"column:character_id;not null;index:idx_character_item,unique" json:"characterId"`
	ItemID      int       `gorm:"column:item_id;not null;index:idx_character_item,unique" json:"itemId"`
	Count       int       `gorm:"column:count;not null" json:"count"`
	Character   Character `gorm:"foreignkey:CharacterID;references:ID" json:"-"`
	Item        Item      `gorm:"foreignkey:ItemID;references:ID" json:"-"`
}

// EquippedEntry marks a single equipped copy of an item, at most one
// per (character, item) pair.
type EquippedEntry struct {
	ID          int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	CharacterID int       `gorm:"column:character_id;not null;index:idx_equipped_character_item,unique" json:"characterId"`
	ItemID      int       `gorm:"column:item_id;not null;index:idx_equipped_character_item,unique" json:"itemId"`
	Character   Character `gorm:"foreignkey:CharacterID;references:ID" json:"-"`
	Item        Item      `gorm:"foreignkey:ItemID;references:ID" json:"-"`
}

type InventoryItemResponse struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
}

type EquippedItemResponse struct {
	ItemID   int    `json:"itemId"`
	ItemName string `json:"itemName"`
}

type EquipRequest struct {
	ItemID int `json:"itemId"`
}

// EquipResponse reports the stat snapshots around an equip or unequip
// transition.
type EquipResponse struct {
	Before   Stats  `json:"BEFORE"`
	ItemName string `json:"ITEMNAME"`
	After    Stats  `json:"AFTER"`
}

type InventoryRepository interface {
	ListInventory(ctx context.Context, username string, characterID int) ([]InventoryItemResponse, error)
	ListEquipped(ctx context.Context, characterID int) ([]EquippedItemResponse, error)
	EquipItem(ctx context.Context, username string, characterID int, itemID int) (*EquipResponse, error)
	UnequipItem(ctx context.Context, username string, characterID int, itemID int) (*EquipResponse, error)
}
