package main

import (
	"fmt"
	"log"

	"item_simulator/domain"
	"item_simulator/internal/service/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate() (err error) {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return err
	}
	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Character{},
		&domain.CharacterStats{},
		&domain.Item{},
		&domain.ItemStats{},
		&domain.InventoryEntry{},
		&domain.EquippedEntry{},
	)
	if err != nil {
		return err
	}
	fmt.Println("Database migrated")
	return nil
}

func main() {
	err := migrate()
	if err != nil {
		log.Fatal(err)
	}
}
