package main

import (
	"gin-shop/config"
	"gin-shop/infra"
)

func main() {
	infra.Initialize()
	cfg := config.Load()
	db := infra.SetupDB()

	if err := infra.Migrate(db); err != nil {
		panic("Failed to migrate database")
	}
	if err := infra.Seed(db, cfg); err != nil {
		panic("Failed to seed database")
	}
}
