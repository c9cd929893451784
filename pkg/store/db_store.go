package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/db"
	"liyu1981.xyz/co2-monitor/pkg/models"
)

type dbStore struct {
	db db.DB
}

var _ KV = &dbStore{}

// NewDB stores entries in the kv_entries table.
func NewDB(instance *db.DB) KV {
	return &dbStore{db: *instance}
}

func (ds *dbStore) String() string {
	if ds.db.DSN == "" {
		return "sqlite"
	}
	return fmt.Sprintf("sqlite '%s'", ds.db.DSN)
}

func (ds *dbStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := ds.db.Conn.WithContext(ctx).Where(&models.KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (ds *dbStore) Put(ctx context.Context, key string, value []byte) error {
	logger := common.GetLoggerWith(common.LoggerNameStore)

	entry := models.KVEntry{
		Key:   key,
		Value: string(value),
	}

	err := ds.db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error

	if err == nil {
		logger.Debug("Upserted entry", zap.String("key", key), zap.Int("size", len(value)))
	}

	return err
}
