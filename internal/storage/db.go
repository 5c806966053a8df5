// Package storage provides PostgreSQL persistence behind the service
// repository interfaces.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB wraps the gorm handle and exposes the repository constructors.
type DB struct {
	gorm *gorm.DB
}

func Connect(dsn string) (*DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve postgres sql db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &DB{gorm: db}, nil
}

// Migrate creates or updates the schema for every model.
func (d *DB) Migrate() error {
	return d.gorm.AutoMigrate(
		&userModel{},
		&verificationModel{},
		&categoryModel{},
		&restaurantModel{},
		&dishModel{},
		&orderModel{},
		&paymentModel{},
	)
}

func (d *DB) Close() error {
	if d == nil || d.gorm == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// notFoundToNil maps gorm's record-not-found to the (absent, no error)
// convention the repository interfaces use.
func notFoundToNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
