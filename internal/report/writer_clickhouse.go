// Package report persists the end-of-run heavy hitter results into
// ClickHouse, so runs can be compared and queried after the process exits.
package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/engine/sink"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS heavy_hitters (
    Timestamp DateTime,
    RunID     String,
    FlowKey   UInt64,
    SrcIP     String,
    DstIP     String,
    BytePeak  UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (RunID, Timestamp, FlowKey);
`

// ClickHouseWriter inserts merged heavy hitter results into ClickHouse.
type ClickHouseWriter struct {
	conn driver.Conn
}

// NewClickHouseWriter connects to ClickHouse and ensures the results table
// exists.
func NewClickHouseWriter(cfg config.ClickHouseConfig) (*ClickHouseWriter, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured table exists.")

	return &ClickHouseWriter{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// Write inserts one run's merged heavy hitter map as a single batch. The
// runID tags all rows of the run so later queries can tell runs apart.
func (w *ClickHouseWriter) Write(ctx context.Context, runID string, hitters map[uint64]sink.Record) error {
	if len(hitters) == 0 {
		return nil // nothing to write
	}

	batch, err := w.conn.PrepareBatch(ctx, "INSERT INTO heavy_hitters")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	now := time.Now()
	for key, rec := range hitters {
		if err := batch.Append(now, runID, key, rec.SrcText, rec.DstText, rec.BytePeak); err != nil {
			return fmt.Errorf("failed to append flow to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Wrote %d heavy hitter flows to ClickHouse for run '%s'", len(hitters), runID)
	return nil
}

// Close releases the ClickHouse connection.
func (w *ClickHouseWriter) Close() error {
	return w.conn.Close()
}
