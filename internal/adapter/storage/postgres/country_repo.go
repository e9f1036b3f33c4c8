package postgres

import (
	"context"
	"fmt"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// CountryRepo implements ports.CountryRepository.
type CountryRepo struct {
	pool Pool
}

var _ ports.CountryRepository = (*CountryRepo)(nil)

// NewCountryRepo creates a new CountryRepo.
func NewCountryRepo(pool Pool) *CountryRepo {
	return &CountryRepo{pool: pool}
}

const (
	selectCountries = `SELECT code, name, balance, landing, current_limit, current_valid_until,
		current_protocol, overlimit, limit_exceeded, last_updated, last_updated_by, status, version
		FROM countries ORDER BY position`

	selectPending = `SELECT country_code, id, old_limit, new_limit, old_valid_until, new_valid_until,
		old_protocol, new_protocol, requested_by, requested_at
		FROM pending_requests`

	selectHistory = `SELECT country_code, id, changed_at, changed_by, approved_by, old_limit, new_limit,
		old_valid_until, new_valid_until, old_protocol, new_protocol, status
		FROM limit_history ORDER BY country_code, seq DESC`

	upsertCountry = `INSERT INTO countries (code, name, balance, landing, current_limit, current_valid_until,
		current_protocol, overlimit, limit_exceeded, last_updated, last_updated_by, status, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (code) DO UPDATE SET
			balance = EXCLUDED.balance,
			landing = EXCLUDED.landing,
			current_limit = EXCLUDED.current_limit,
			current_valid_until = EXCLUDED.current_valid_until,
			current_protocol = EXCLUDED.current_protocol,
			overlimit = EXCLUDED.overlimit,
			limit_exceeded = EXCLUDED.limit_exceeded,
			last_updated = EXCLUDED.last_updated,
			last_updated_by = EXCLUDED.last_updated_by,
			status = EXCLUDED.status,
			version = EXCLUDED.version`

	deletePending = `DELETE FROM pending_requests WHERE country_code = $1`

	insertPending = `INSERT INTO pending_requests (country_code, id, old_limit, new_limit, old_valid_until,
		new_valid_until, old_protocol, new_protocol, requested_by, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	insertHistory = `INSERT INTO limit_history (id, country_code, changed_at, changed_by, approved_by,
		old_limit, new_limit, old_valid_until, new_valid_until, old_protocol, new_protocol, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
)

// LoadAll reads every country with its pending request and history.
func (r *CountryRepo) LoadAll(ctx context.Context) ([]domain.CountryRecord, error) {
	rows, err := r.pool.Query(ctx, selectCountries)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	var records []domain.CountryRecord
	byCode := make(map[string]int)
	for rows.Next() {
		var rec domain.CountryRecord
		var status string
		if err := rows.Scan(
			&rec.Code, &rec.Name, &rec.Balance, &rec.Landing, &rec.CurrentLimit,
			&rec.CurrentValidUntil, &rec.CurrentProtocol, &rec.Overlimit, &rec.LimitExceeded,
			&rec.LastUpdated, &rec.LastUpdatedBy, &status, &rec.Version,
		); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		rec.Status = domain.RecordStatus(status)
		rec.History = []domain.HistoryRecord{}
		byCode[rec.Code] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}

	if err := r.loadPending(ctx, records, byCode); err != nil {
		return nil, err
	}
	if err := r.loadHistory(ctx, records, byCode); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *CountryRepo) loadPending(ctx context.Context, records []domain.CountryRecord, byCode map[string]int) error {
	rows, err := r.pool.Query(ctx, selectPending)
	if err != nil {
		return fmt.Errorf("query pending requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		p := &domain.PendingRequest{}
		if err := rows.Scan(
			&code, &p.ID, &p.OldLimit, &p.NewLimit, &p.OldValidUntil, &p.NewValidUntil,
			&p.OldProtocol, &p.NewProtocol, &p.RequestedBy, &p.RequestedAt,
		); err != nil {
			return fmt.Errorf("scan pending request: %w", err)
		}
		i, ok := byCode[code]
		if !ok {
			return fmt.Errorf("pending request for unknown country %s", code)
		}
		records[i].Pending = p
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate pending requests: %w", err)
	}
	return nil
}

func (r *CountryRepo) loadHistory(ctx context.Context, records []domain.CountryRecord, byCode map[string]int) error {
	rows, err := r.pool.Query(ctx, selectHistory)
	if err != nil {
		return fmt.Errorf("query limit history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, status string
		var h domain.HistoryRecord
		if err := rows.Scan(
			&code, &h.ID, &h.ChangedAt, &h.ChangedBy, &h.ApprovedBy, &h.OldLimit, &h.NewLimit,
			&h.OldValidUntil, &h.NewValidUntil, &h.OldProtocol, &h.NewProtocol, &status,
		); err != nil {
			return fmt.Errorf("scan limit history: %w", err)
		}
		h.Status = domain.HistoryStatus(status)
		i, ok := byCode[code]
		if !ok {
			return fmt.Errorf("limit history for unknown country %s", code)
		}
		records[i].History = append(records[i].History, h)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate limit history: %w", err)
	}
	return nil
}

// SaveRecord writes the record and the history entries it gained in one
// transaction. appended is newest first; rows are inserted oldest first so
// seq order matches history order.
func (r *CountryRepo) SaveRecord(ctx context.Context, rec *domain.CountryRecord, appended []domain.HistoryRecord) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertCountry,
			rec.Code, rec.Name, rec.Balance, rec.Landing, rec.CurrentLimit, rec.CurrentValidUntil,
			rec.CurrentProtocol, rec.Overlimit, rec.LimitExceeded, rec.LastUpdated.UTC(),
			rec.LastUpdatedBy, string(rec.Status), rec.Version,
		); err != nil {
			return fmt.Errorf("upsert country %s: %w", rec.Code, err)
		}

		if _, err := tx.Exec(ctx, deletePending, rec.Code); err != nil {
			return fmt.Errorf("clear pending request %s: %w", rec.Code, err)
		}
		if p := rec.Pending; p != nil {
			if _, err := tx.Exec(ctx, insertPending,
				rec.Code, p.ID, p.OldLimit, p.NewLimit, p.OldValidUntil, p.NewValidUntil,
				p.OldProtocol, p.NewProtocol, p.RequestedBy, p.RequestedAt.UTC(),
			); err != nil {
				return fmt.Errorf("insert pending request %s: %w", rec.Code, err)
			}
		}

		for i := len(appended) - 1; i >= 0; i-- {
			h := appended[i]
			if _, err := tx.Exec(ctx, insertHistory,
				h.ID, rec.Code, h.ChangedAt.UTC(), h.ChangedBy, h.ApprovedBy, h.OldLimit, h.NewLimit,
				h.OldValidUntil, h.NewValidUntil, h.OldProtocol, h.NewProtocol, string(h.Status),
			); err != nil {
				return fmt.Errorf("insert limit history %s: %w", h.ID, err)
			}
		}
		return nil
	})
}
