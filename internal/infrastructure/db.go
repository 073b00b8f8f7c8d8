package infrastructure

import (
	"Piggyvault/config"
	"Piggyvault/internal/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("path", cfg.Database.Path).
			Msg("Falha ao abrir o banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("path", cfg.Database.Path).
		Msg("Banco de dados aberto com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&goalDB{},
		&transactionDB{},
		&accountDB{},
		&achievementDB{},
		&challengeDB{},
		&metaDB{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *goalDB:
		return "Goal"
	case *transactionDB:
		return "Transaction"
	case *accountDB:
		return "Account"
	case *achievementDB:
		return "Achievement"
	case *challengeDB:
		return "Challenge"
	case *metaDB:
		return "Meta"
	default:
		return "Unknown"
	}
}
