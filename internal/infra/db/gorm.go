package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"shopdb/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, Options())
}

// Options は全接続で共通のgorm設定。
// ドライバのエラーを gorm.ErrDuplicatedKey などへ変換させる
func Options() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         NewLogger(log.New(os.Stdout, "\r\n", log.LstdFlags)),
	}
}

// NewLogger はWarn以上だけ出すgormのロガー。
// record not found は通常の分岐なので出さない
func NewLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Dialector は DB_DRIVER に応じたdialectorを返す。
func Dialector(cfg config.Config) (gorm.Dialector, error) {
	// DATABASE_URL があれば最優先で使う
	dsn := cfg.DatabaseURL

	switch cfg.DBDriver {
	case config.DriverPostgres:
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// Migrate はテーブルを用意する（起動時に1回）。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
