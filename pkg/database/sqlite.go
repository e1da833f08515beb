package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens an embedded database at path (":memory:" allowed).
func ConnectSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger(),
	})
}
