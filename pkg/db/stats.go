package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yumyai/homoindex/pkg/handler/request"
)

// Outcome values recorded for a lookup.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

const statsSchema = `
CREATE TABLE IF NOT EXISTS lookup_stats (
	genus         TEXT NOT NULL,
	gene_id       TEXT NOT NULL,
	outcome       TEXT NOT NULL,
	orthogroup_id TEXT NOT NULL DEFAULT '',
	hits          INTEGER NOT NULL DEFAULT 0,
	last_seen     TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (genus, gene_id, outcome)
);`

// LookupStatsDB keeps a tally of gene lookups served over HTTP, one
// row per (genus, gene, outcome). Batch runs never touch it.
type LookupStatsDB struct {
	statsSQL *sql.DB
}

// LookupStat is one tally row. LastSeen is RFC3339 in UTC.
type LookupStat struct {
	Genus        string `json:"genus"`
	GeneID       string `json:"gene_id"`
	Outcome      string `json:"outcome"`
	OrthogroupID string `json:"orthogroup_id"`
	Hits         int64  `json:"hits"`
	LastSeen     string `json:"last_seen"`
}

func NewLookupStatsDB(db *sql.DB) (*LookupStatsDB, error) {
	// Check for db schema and version here later
	if _, err := db.Exec(statsSchema); err != nil {
		return nil, fmt.Errorf("create lookup_stats table: %w", err)
	}
	return &LookupStatsDB{statsSQL: db}, nil
}

// Record upserts the tally for one lookup.
func (sdb *LookupStatsDB) Record(ctx context.Context, genus, gene_id, outcome, orthogroup_id string) error {

	UPSERT := `
	INSERT INTO lookup_stats (genus, gene_id, outcome, orthogroup_id, hits, last_seen)
	VALUES (?, ?, ?, ?, 1, ?)
	ON CONFLICT (genus, gene_id, outcome)
	DO UPDATE SET hits = hits + 1,
	              orthogroup_id = excluded.orthogroup_id,
	              last_seen = excluded.last_seen
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := sdb.statsSQL.ExecContext(ctx, UPSERT, genus, gene_id, outcome, orthogroup_id, now)
	if err != nil {
		return fmt.Errorf("record lookup: %w", err)
	}
	return nil
}

// Top returns the leading tally rows under the requested ordering.
func (sdb *LookupStatsDB) Top(ctx context.Context, order request.StatsOrder, limit int) ([]*LookupStat, error) {

	QUERY := `
	SELECT genus, gene_id, outcome, orthogroup_id, hits, last_seen
	FROM lookup_stats
	ORDER BY ` + orderClause(order) + `
	LIMIT ?
	`

	stm, err := sdb.statsSQL.PrepareContext(ctx, QUERY)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare stats query: %w", err)
	}
	defer stm.Close()

	rows, query_err := stm.QueryContext(ctx, limit)
	if query_err != nil {
		return nil, fmt.Errorf("failed to query lookup stats: %w", query_err)
	}
	defer rows.Close()

	var stats []*LookupStat
	for rows.Next() {
		var s LookupStat
		if err := rows.Scan(&s.Genus, &s.GeneID, &s.Outcome, &s.OrthogroupID, &s.Hits, &s.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats = append(stats, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CountLookups returns the total number of recorded lookups, hits
// summed over every tally row.
func (sdb *LookupStatsDB) CountLookups(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	err := sdb.statsSQL.QueryRowContext(ctx, `SELECT SUM(hits) FROM lookup_stats`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count lookups: %w", err)
	}
	return total.Int64, nil
}

func (sdb *LookupStatsDB) Close() error {
	return sdb.statsSQL.Close()
}

// ORDER BY cannot take a bind parameter, pick the clause from the enum.
func orderClause(order request.StatsOrder) string {
	switch order {
	case request.StatsOrderRecent:
		return "last_seen DESC, gene_id ASC"
	default:
		return "hits DESC, gene_id ASC"
	}
}
