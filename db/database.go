package db

import (
	"fmt"
	"log"
	"net/url"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options selects the database backend
type Options struct {
	Path        string // Local SQLite file
	TursoURL    string // libsql:// URL; takes precedence over Path when set
	TursoToken  string
	Environment string
}

// Initialize sets up the database connection.
// Local files use WAL mode; a Turso URL is opened through the libsql driver.
func Initialize(opts Options) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if opts.Environment == "production" {
		logLevel = logger.Warn
	}

	DB, err = gorm.Open(dialector(opts), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if opts.TursoURL != "" {
		log.Println("Database connection established (Turso)")
	} else {
		log.Println("Database connection established (WAL mode enabled)")
	}
	return nil
}

func dialector(opts Options) gorm.Dialector {
	if opts.TursoURL != "" {
		return sqlite.New(sqlite.Config{
			DriverName: "libsql",
			DSN:        TursoDSN(opts.TursoURL, opts.TursoToken),
		})
	}
	return sqlite.Open(opts.Path + "?_journal_mode=WAL")
}

// TursoDSN appends the auth token to a libsql URL
func TursoDSN(rawURL, token string) string {
	if token == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("authToken", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
