// Package query reads persisted heavy hitter results back out of ClickHouse
// for the API service.
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	v1 "Go2HeavyHitter/api/gen/v1"
	"Go2HeavyHitter/internal/config"
)

// Querier defines the read side over persisted results.
type Querier interface {
	// HeavyHitters returns the flows of a run ordered by descending byte
	// peak. An empty runID means all runs; limit 0 means no limit.
	HeavyHitters(ctx context.Context, runID string, since time.Time, limit uint32) ([]*v1.HeavyHitter, error)
	// TargetedHosts returns the deduplicated destination hosts of a run.
	TargetedHosts(ctx context.Context, runID string, since time.Time) ([]string, error)
}

// clickhouseQuerier implements the Querier interface for ClickHouse.
type clickhouseQuerier struct {
	conn clickhouse.Conn
}

// NewClickHouseQuerier creates a new querier for ClickHouse.
func NewClickHouseQuerier(cfg config.ClickHouseConfig) (Querier, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return &clickhouseQuerier{conn: conn}, nil
}

func buildWhere(runID string, since time.Time) (string, []interface{}) {
	var clauses []string
	args := []interface{}{}

	if runID != "" {
		clauses = append(clauses, "RunID = ?")
		args = append(args, runID)
	}
	if !since.IsZero() {
		clauses = append(clauses, "Timestamp >= ?")
		args = append(args, since)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// HeavyHitters queries the per-flow peaks, collapsing repeated rows of the
// same flow to their maximum.
func (q *clickhouseQuerier) HeavyHitters(ctx context.Context, runID string, since time.Time, limit uint32) ([]*v1.HeavyHitter, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			FlowKey,
			any(SrcIP) AS SrcIP,
			any(DstIP) AS DstIP,
			max(BytePeak) AS BytePeak
		FROM heavy_hitters
	`)

	where, args := buildWhere(runID, since)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(`
		GROUP BY FlowKey
		ORDER BY BytePeak DESC
	`)
	if limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT %d", limit))
	}

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var hitters []*v1.HeavyHitter
	for rows.Next() {
		var h v1.HeavyHitter
		if err := rows.Scan(&h.FlowKey, &h.SrcIp, &h.DstIp, &h.BytePeak); err != nil {
			return nil, fmt.Errorf("failed to scan heavy hitter row: %w", err)
		}
		hitters = append(hitters, &h)
	}

	return hitters, nil
}

// TargetedHosts queries the distinct destination hosts of the stored flows.
func (q *clickhouseQuerier) TargetedHosts(ctx context.Context, runID string, since time.Time) ([]string, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT DISTINCT DstIP FROM heavy_hitters")

	where, args := buildWhere(runID, since)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" ORDER BY DstIP")

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var hosts []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("failed to scan host row: %w", err)
		}
		hosts = append(hosts, h)
	}

	return hosts, nil
}
