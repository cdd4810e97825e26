package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sebuszqo/FoodManager/internal/config"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// DBService owns the shared *sql.DB pool.
type DBService struct {
	DB *sql.DB
}

// NewDBService opens the pgx backed pool with the configured limits and pings it.
func NewDBService(cfg config.DatabaseConfig) (*DBService, error) {
	db, err := sql.Open("pgx", cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	return &DBService{DB: db}, nil
}

// Health pings the database and reports the pool state.
func (s *DBService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	dbStats := s.DB.Stats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["open_connections"] = fmt.Sprint(dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprint(dbStats.InUse)
	stats["idle"] = fmt.Sprint(dbStats.Idle)
	return stats
}

func (s *DBService) Close() error {
	logrus.Info("Closing database connection")
	return s.DB.Close()
}
