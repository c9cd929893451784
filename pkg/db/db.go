package db

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	constant "liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/models"
)

type DB struct {
	Conn *gorm.DB
	// DSN is the sqlite file or URI opened, empty for other dialectors.
	DSN string
}

// Open connects with the given dialector and migrates the monitor tables.
func Open(dialector gorm.Dialector) (*DB, error) {
	var logger = constant.GetLoggerWith(constant.LoggerNameStore)

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	instance := &DB{Conn: conn}
	if d, ok := dialector.(*sqlite.Dialector); ok {
		instance.DSN = d.DSN
	}

	if err := instance.Conn.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
	}

	return instance, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteFileDialector(dbPath string) gorm.Dialector {
	return sqlite.Open(dbPath)
}

// UseMemorySqliteDialector returns a fresh named in-memory database, so two
// callers never share state.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}
