package database

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"blogsphere/internal/config"
)

type MethodsDB interface {
	CloseDB() error
	RunMigrations(ctx context.Context, migrationFilePath string) error
	HealthCheck(ctx context.Context) error
}

// Pinger is the part of DB the health endpoint needs.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type DB struct {
	*sqlx.DB
	log *zap.Logger
}

// driverName maps DB_DRIVER onto a registered database/sql driver.
func driverName(driver string) (string, error) {
	switch driver {
	case "", "postgres", "pq":
		return "postgres", nil
	case "pgx":
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func DSN(cfg config.DB) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		cfg.DbUSER,
		cfg.DbPASSWORD,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)
}

func ConnectDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*DB, error) {
	driver, err := driverName(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	log.Info("connecting to database",
		zap.String("driver", driver),
		zap.String("host", cfg.DB.DbHOST),
		zap.String("dbname", cfg.DB.DbNAME))

	db, err := sqlx.ConnectContext(ctx, driver, DSN(cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// pgx registers its own driver name, but the queries use postgres placeholders
	db = sqlx.NewDb(db.DB, "postgres")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{DB: db, log: log}

	if err := dbStruct.RunMigrations(ctx, cfg.DB.MigrationPath); err != nil {
		log.Warn("migrations not applied", zap.Error(err))
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database health check: %w", err)
	}

	log.Info("connected to database")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) RunMigrations(ctx context.Context, migrationFilePath string) error {
	if _, err := os.Stat(migrationFilePath); os.IsNotExist(err) {
		return fmt.Errorf("migration file not found: %s", migrationFilePath)
	}

	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}

	db.log.Info("applying migrations", zap.String("file", migrationFilePath))

	if _, err = db.ExecContext(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.PingContext(ctx)
}
