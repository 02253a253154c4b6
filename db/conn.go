// Package db contains everything related to opening and migrating
// the relational database
package db

import (
	"fmt"
	"recipe-api/model"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	dsn := viper.GetString("db.dsn")

	switch viper.GetString("db.driver") {
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		// SQLite needs foreign keys switched on per connection for
		// the user cascade deletes to actually fire
		if !strings.Contains(dsn, "_fk=") {
			if strings.Contains(dsn, "?") {
				dsn += "&_fk=1"
			} else {
				dsn += "?_fk=1"
			}
		}
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.AuthToken{}, model.Recipe{}, model.Tag{}, model.Ingredient{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
