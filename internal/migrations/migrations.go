// Package migrations применяет SQL-миграции схемы при старте,
// если настроена база данных.
package migrations

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"quizAgent/internal/config"
	"quizAgent/internal/database"
	"quizAgent/internal/logger"
)

func Run(cfg *config.Cfg, log *logger.Zap) error {
	m, err := migrate.New(cfg.Migrations.Path, database.DSN(cfg.Database))
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Схема БД актуальна")
			return nil
		}
		return err
	}

	log.Info("Миграции применены", zap.String("path", cfg.Migrations.Path))
	return nil
}
