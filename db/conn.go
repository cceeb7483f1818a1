// Package db contains the database connection setup
package db

import (
	"fmt"
	"nutristore/catalog-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("db.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("db.dsn"))
	default:
		dial = sqlite.Open(viper.GetString("db.dsn"))
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database, %w", viper.GetString("db.driver"), err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.ProductCategory{},
		model.Product{},
		model.Review{},
		model.Order{},
		model.OrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
