// Package storage provides the sqlx repositories over postgres. Exercise
// and note lists are stored as jsonb columns; everything else is flat.
package storage

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/internal/models"
)

// Storage groups all repositories over a shared connection pool.
type Storage struct {
	db *sqlx.DB

	Users    *UsersRepo
	Cycles   *CyclesRepo
	Plans    *PlansRepo
	Sessions *SessionsRepo
	Maxes    *MaxesRepo
}

// New builds the repository set over an established pool.
func New(db *sqlx.DB) *Storage {
	return &Storage{
		db:       db,
		Users:    &UsersRepo{db: db},
		Cycles:   &CyclesRepo{db: db},
		Plans:    &PlansRepo{db: db},
		Sessions: &SessionsRepo{db: db},
		Maxes:    &MaxesRepo{db: db},
	}
}

// UpsertCycle lets the catalog seeder write through the aggregate without
// knowing the repository layout.
func (s *Storage) UpsertCycle(ctx context.Context, c models.Cycle) error {
	return s.Cycles.Upsert(ctx, c)
}
