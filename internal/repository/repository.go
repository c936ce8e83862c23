package repository

import (
	"context"
	"database/sql"
	"time"

	"pi_alarm_clock"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*pi_alarm_clock.User, error)
}

type EventRepo interface {
	Append(ctx context.Context, e pi_alarm_clock.ClockEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]pi_alarm_clock.ClockEvent, error)
}

type Repository struct {
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
