package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Dispatch is the record of one hotkey dispatch through the pipeline
type Dispatch struct {
	ID               int64
	Timestamp        time.Time
	Hotkey           string
	Provider         string
	Model            string
	SelectionChars   int
	ResponseChars    int
	RequestLatencyMs int64
	Success          bool
	ErrorMessage     string
}

// SaveDispatch saves a dispatch record to the database
func (db *DB) SaveDispatch(d *Dispatch) error {
	query := `
		INSERT INTO dispatches (
			hotkey, provider, model, selection_chars, response_chars,
			request_latency_ms, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.conn.Exec(query,
		d.Hotkey, d.Provider, d.Model, d.SelectionChars, d.ResponseChars,
		d.RequestLatencyMs, d.Success, d.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save dispatch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	d.ID = id
	return nil
}

// RecentDispatches retrieves the most recent dispatch records
func (db *DB) RecentDispatches(limit int) ([]Dispatch, error) {
	query := `
		SELECT
			id, timestamp, hotkey, provider, model, selection_chars,
			response_chars, request_latency_ms, success, error_message
		FROM dispatches
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatches: %w", err)
	}
	defer rows.Close()

	var dispatches []Dispatch
	for rows.Next() {
		var d Dispatch
		var errorMessage sql.NullString

		err := rows.Scan(
			&d.ID, &d.Timestamp, &d.Hotkey, &d.Provider, &d.Model,
			&d.SelectionChars, &d.ResponseChars, &d.RequestLatencyMs,
			&d.Success, &errorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch: %w", err)
		}

		if errorMessage.Valid {
			d.ErrorMessage = errorMessage.String
		}

		dispatches = append(dispatches, d)
	}

	return dispatches, rows.Err()
}

// Totals returns the overall dispatch count and how many succeeded
func (db *DB) Totals() (total int, succeeded int, err error) {
	query := `SELECT COUNT(*), COALESCE(SUM(success), 0) FROM dispatches`
	if err := db.conn.QueryRow(query).Scan(&total, &succeeded); err != nil {
		return 0, 0, fmt.Errorf("failed to query totals: %w", err)
	}
	return total, succeeded, nil
}
