// Package kvsqlite persists collection snapshots in a single local SQLite
// file: one row per collection, whole value replaced on every write.
package kvsqlite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/neonmart/neonmart-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type record struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value []byte `gorm:"column:value"`
}

func (record) TableName() string {
	return "collections"
}

// Store implements kv.Store on top of a GORM SQLite connection.
type Store struct {
	conn *gorm.DB
}

// Open boots the SQLite-backed store and ensures the collections table exists.
func Open(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (*Store, error) {
	if cfg.SQLitePath == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrating collections table: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "path", cfg.SQLitePath), "snapshot store opened")
	}

	return &Store{conn: conn}, nil
}

func (s *Store) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	var rec record
	err := s.conn.WithContext(ctx).First(&rec, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (s *Store) Set(ctx context.Context, collection string, value []byte) error {
	rec := record{Name: collection, Value: value}
	return s.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
}

func (s *Store) Delete(ctx context.Context, collection string) error {
	return s.conn.WithContext(ctx).Delete(&record{}, "name = ?", collection).Error
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
