// internal/repository/report_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/localbzz/clientops/internal/models"
)

// ReportRepository serves the dashboard aggregates with raw SQL over the
// shared connection pool. These are read-only cross-entity joins that are
// clumsy to express through the entity client.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// UpcomingShoots returns shoots from today onward joined with their client
// names, soonest first.
func (r *ReportRepository) UpcomingShoots(ctx context.Context, limit int) ([]models.UpcomingShootRow, error) {
	if limit <= 0 {
		limit = 10
	}

	const query = `
		SELECT s.id AS shoot_id,
		       s.client_id AS client_id,
		       c.name AS client_name,
		       s.shoot_date AS shoot_date,
		       s.shoot_time AS shoot_time,
		       s.location AS location,
		       s.status AS status,
		       s.type AS type
		FROM shoots s
		JOIN client_accounts c ON c.id = s.client_id
		WHERE s.shoot_date >= $1
		ORDER BY s.shoot_date ASC
		LIMIT $2`

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var rows []models.UpcomingShootRow
	if err := r.db.SelectContext(ctx, &rows, query, today, limit); err != nil {
		return nil, fmt.Errorf("query upcoming shoots: %w", err)
	}

	return rows, nil
}

// ClientTaskLoad returns per-client open and overdue task counts for
// active clients, heaviest first.
func (r *ReportRepository) ClientTaskLoad(ctx context.Context) ([]models.ClientTaskLoadRow, error) {
	const query = `
		SELECT c.id AS client_id,
		       c.name AS client_name,
		       COUNT(t.id) FILTER (WHERE t.status = 'todo') AS open_tasks,
		       COUNT(t.id) FILTER (WHERE t.status = 'todo' AND t.due_date < $1) AS overdue
		FROM client_accounts c
		LEFT JOIN tasks t ON t.client_id = c.id
		WHERE c.status = 'active'
		GROUP BY c.id, c.name
		ORDER BY open_tasks DESC, c.name ASC`

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var rows []models.ClientTaskLoadRow
	if err := r.db.SelectContext(ctx, &rows, query, today); err != nil {
		return nil, fmt.Errorf("query client task load: %w", err)
	}

	return rows, nil
}

// Totals returns the headline dashboard numbers.
func (r *ReportRepository) Totals(ctx context.Context) (models.DashboardTotals, error) {
	const query = `
		SELECT (SELECT COUNT(*) FROM client_accounts WHERE status = 'active') AS active_clients,
		       (SELECT COUNT(*) FROM tasks WHERE status = 'todo') AS open_tasks,
		       (SELECT COUNT(*) FROM tasks WHERE status = 'todo' AND due_date < $1) AS overdue_tasks,
		       (SELECT COUNT(*) FROM shoots WHERE shoot_date >= $1) AS upcoming_shoots`

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var totals models.DashboardTotals
	if err := r.db.GetContext(ctx, &totals, query, today); err != nil {
		return models.DashboardTotals{}, fmt.Errorf("query dashboard totals: %w", err)
	}

	return totals, nil
}
