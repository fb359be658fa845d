package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ovenpanel/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

// constants and helpers for clarity and reuse
const (
	panelStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO panel_state (id, temp_c, calibrated, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			temp_c=excluded.temp_c,
			calibrated=excluded.calibrated,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, temp_c, calibrated, updated_at
		FROM panel_state WHERE id=?
	`
)

// Save updates or inserts the panel_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state models.PanelState) error {
	// ensure UpdatedAt is always persisted as UTC; set if zero
	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		panelStateRowID,
		state.TempC,
		state.Calibrated,
		tsUTC,
	)
	return err
}

// Load fetches the single panel_state row (id=1).
func (r *StateSQLite) Load(ctx context.Context) (models.PanelState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, panelStateRowID)

	var s models.PanelState
	if err := row.Scan(
		&s.ID,
		&s.TempC,
		&s.Calibrated,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PanelState{}, nil // no state yet
		}
		return models.PanelState{}, err
	}

	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
