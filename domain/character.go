package domain

import "context"

type Character struct {
	ID        int     `gorm:"primary_key;auto_increment;column:id" json:"characterId"`
	AccountID int     `gorm:"column:account_id;not null;index" json:"accountId"`
	Name      string  `gorm:"type:varchar(50);unique;not null;column:name" json:"charactersName"`
	Money     int     `gorm:"column:money;not null;default:0" json:"money"`
	Account   Account `gorm:"foreignkey:AccountID;references:ID" json:"-"`
}

// Stats is the set of derived attributes an equipped item adjusts.
type Stats struct {
	Power  int `json:"power"`
	Health int `json:"health"`
}

type CharacterStats struct {
	ID          int       `gorm:"primary_key;auto_increment;column:id" json:"-"`
	CharacterID int       `gorm:"column:character_id;not null;unique" json:"-"`
	Power       int       `gorm:"column:power;not null;default:0" json:"power"`
	Health      int       `gorm:"column:health;not null;default:0" json:"health"`
	Character   Character `gorm:"foreignkey:CharacterID;references:ID" json:"-"`
}

type CreateCharacterRequest struct {
	Name  string `json:"charactersName"`
	Stats Stats  `json:"stats"`
	Money int    `json:"money"`
}

type CreateCharacterResponse struct {
	Character Character      `json:"character"`
	Stats     CharacterStats `json:"stats"`
}

// CharacterDetailResponse is the public character view. Money is only
// present when the viewer owns the character.
type CharacterDetailResponse struct {
	Name   string `json:"charactersName"`
	Power  int    `json:"power"`
	Health int    `json:"health"`
	Money  *int   `json:"money,omitempty"`
}

type CharacterRepository interface {
	CreateCharacter(ctx context.Context, username string, name string, stats Stats, money int) (*Character, *CharacterStats, error)
	DeleteCharacter(ctx context.Context, username string, characterID int) error
	GetCharacterDetail(ctx context.Context, characterID int) (*Character, *CharacterStats, string, error)
	EarnMoney(ctx context.Context, username string, characterID int, amount int) (int, error)
}
