//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ad-approval-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertAdListing stores the builder's listing the way the upstream ad system would.
// Blank ad unit id or admin contact are stored as NULL.
func InsertAdListing(t *testing.T, db DBLike, b *builder.AdListingBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO custom_ads (id, ad_unit_id, title, ad_admin, is_approved, status, last_email_sent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.ID, row.AdUnitID, row.Title, row.AdAdmin, row.IsApproved, row.Status, row.LastEmailSent)
	require.NoError(t, err)

	return row.ID
}

type AdListingRow struct {
	IsApproved    bool
	Status        string
	LastEmailSent *time.Time
}

func GetAdListing(t *testing.T, db DBLike, id uuid.UUID) AdListingRow {
	t.Helper()

	var (
		row  AdListingRow
		sent pgtype.Timestamptz
	)
	err := db.QueryRow(context.Background(),
		"SELECT is_approved, status, last_email_sent FROM custom_ads WHERE id = $1", id).
		Scan(&row.IsApproved, &row.Status, &sent)
	require.NoError(t, err)

	if sent.Valid {
		ts := sent.Time.UTC()
		row.LastEmailSent = &ts
	}
	return row
}

func CountPaymentEvents(t *testing.T, db DBLike, providerEventID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM payment_events WHERE provider_event_id = $1", providerEventID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
