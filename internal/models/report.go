// internal/models/report.go
package models

import (
	"database/sql"
	"time"
)

// Rows scanned by the sqlx report queries. Field tags match the column
// aliases in internal/repository/report_repository.go.

type UpcomingShootRow struct {
	ShootID    string         `db:"shoot_id"`
	ClientID   string         `db:"client_id"`
	ClientName string         `db:"client_name"`
	ShootDate  time.Time      `db:"shoot_date"`
	ShootTime  sql.NullString `db:"shoot_time"`
	Location   sql.NullString `db:"location"`
	Status     string         `db:"status"`
	Type       string         `db:"type"`
}

type ClientTaskLoadRow struct {
	ClientID   string `db:"client_id"`
	ClientName string `db:"client_name"`
	OpenTasks  int    `db:"open_tasks"`
	Overdue    int    `db:"overdue"`
}

type DashboardTotals struct {
	ActiveClients  int `db:"active_clients"`
	OpenTasks      int `db:"open_tasks"`
	OverdueTasks   int `db:"overdue_tasks"`
	UpcomingShoots int `db:"upcoming_shoots"`
}
