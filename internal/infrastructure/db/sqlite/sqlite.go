// Package sqlite implements the persistence ports on SQLite via GORM. It is
// the alternative to the jsonfile store, selected with STORE_DRIVER=sqlite.
package sqlite

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// userRecord is the persisted form of a user.
type userRecord struct {
	ID           int64  `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;size:100;not null"`
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"size:200"`
	PasswordHash string `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

// taskRecord is the persisted form of a task.
type taskRecord struct {
	ID        int64  `gorm:"primarykey"`
	Title     string `gorm:"size:500;not null"`
	Completed bool   `gorm:"not null;default:false"`
	UserID    int64  `gorm:"index;not null"`
	DueDate   string `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (taskRecord) TableName() string { return "tasks" }

// noteRecord is the persisted form of a note.
type noteRecord struct {
	ID        int64  `gorm:"primarykey"`
	Title     string `gorm:"size:500;not null"`
	Body      string `gorm:"type:text"`
	UserID    int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (noteRecord) TableName() string { return "notes" }

// Open opens (or creates) the SQLite database at path and migrates the
// schema. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&userRecord{}, &taskRecord{}, &noteRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
