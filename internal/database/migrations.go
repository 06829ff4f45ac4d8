package database

import (
	"studytrack/internal/logger"
	"studytrack/internal/models"
)

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Topic{},
		&models.Goal{},
		&models.DailyLog{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("Failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// DropModels drops every model table for a fresh rebuild
func (db *DB) DropModels() error {
	log := logger.New("database").Function("DropModels")
	log.Info("Dropping all model tables")

	if err := db.SQL.Migrator().DropTable(
		&models.DailyLog{},
		&models.Goal{},
		&models.Topic{},
		&models.User{},
	); err != nil {
		return log.Err("Failed to drop tables", err)
	}

	return nil
}

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		// Partial index backing the streak scan (questions_solved > 0, newest first)
		"CREATE INDEX IF NOT EXISTS idx_daily_logs_streak ON daily_logs(user_id, date DESC) WHERE questions_solved > 0",
		"CREATE INDEX IF NOT EXISTS idx_topics_user_created_at ON topics(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_goals_user_created_at ON goals(user_id, created_at DESC)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
