package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"stayhaven/internal/config"
)

type DB struct {
	*sqlx.DB
}

func connString(cfg *config.Config, user, password string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		user,
		password,
		cfg.DB.Name,
		cfg.DB.SSLMode,
	)
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	log.Printf("Connecting to database: host=%s dbname=%s user=%s", cfg.DB.Host, cfg.DB.Name, cfg.DB.User)

	db, err := sqlx.Connect("postgres", connString(cfg, cfg.DB.User, cfg.DB.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := DB{db}

	err = dbStruct.RunMigrations("migrations/001_create_tables.sql")
	if err != nil {
		log.Printf("Warning: failed to apply migrations: %v", err)
	}

	err = dbStruct.HealthCheck()
	if err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Println("Connected to PostgreSQL")
	return &dbStruct, nil
}

// ConnectElevatedDB opens a second connection with the service-role
// credentials. Only the inquiry admin fallback reads through it.
func ConnectElevatedDB(cfg *config.Config) (*DB, error) {
	if cfg.DB.ServiceUser == "" {
		return nil, fmt.Errorf("service-role credentials are not configured")
	}

	db, err := sqlx.Connect("postgres", connString(cfg, cfg.DB.ServiceUser, cfg.DB.ServicePass))
	if err != nil {
		return nil, fmt.Errorf("failed to connect with service-role credentials: %w", err)
	}

	// kept small: this connection serves a single fallback path
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &DB{db}, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) RunMigrations(migrationFilePath string) error {
	if _, err := os.Stat(migrationFilePath); os.IsNotExist(err) {
		return fmt.Errorf("migration file not found: %s", migrationFilePath)
	}

	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	log.Printf("Applying migrations from %s", migrationFilePath)

	_, err = db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Migrations applied")
	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.Ping()
}
