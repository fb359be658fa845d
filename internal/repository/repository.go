package repository

import (
	"context"
	"database/sql"
	"time"

	"ovenpanel/internal/models"
	"ovenpanel/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type StateRepo interface {
	Save(ctx context.Context, s models.PanelState) error
	Load(ctx context.Context) (models.PanelState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.PanelEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.PanelEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(sqlDB),
		EventRepo: NewEventSQLite(sqlDB),
		Auth:      NewUserRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
