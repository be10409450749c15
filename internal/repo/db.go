package repo

import (
	"context"
	"fmt"
	"strings"

	"superlists/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и применяет миграции. log может быть nil.
// DSN вида postgres://... или "host=..." уходит в PostgreSQL, всё остальное — в SQLite (modernc).
func InitDB(dsn string, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if !isPostgres(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite допускает одного писателя; сериализуем доступ на уровне пула
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы users, tokens, lists, items, listsharees.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.List{},
		&model.Item{},
		&model.ListSharee{},
	)
}

// Close освобождает соединения пула.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: withSQLitePragmas(dsn)}
}

// withSQLitePragmas включает внешние ключи и ожидание блокировки для каждого соединения.
func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
