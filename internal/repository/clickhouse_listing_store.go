package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	domrepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	pkgch "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/clickhouse"
	applogger "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/logger"
)

// CHListingStore implements ListingsProvider backed by a ClickHouse table of
// ingested sale listings. Used instead of the live Bayut API when a local
// listings snapshot is available.
type CHListingStore struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

func NewCHListingStore(ch *pkgch.Client, table string) *CHListingStore {
	if table == "" {
		table = "listings"
	}
	return &CHListingStore{db: ch.DB(), table: table}
}

// SetLogger injects a structured logger.
func (s *CHListingStore) SetLogger(l *applogger.Logger) { s.l = l }

// SchemaStatements returns idempotent DDL for the listings table.
func SchemaStatements(table string) []string {
	if table == "" {
		table = "listings"
	}
	return []string{fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            area          LowCardinality(String),
            property_type LowCardinality(String),
            bedrooms      UInt8,
            bathrooms     UInt8,
            size_sqft     Float64,
            price_aed     Float64,
            listed_at     DateTime DEFAULT now()
        ) ENGINE = MergeTree()
        ORDER BY (area, property_type, bedrooms, listed_at)
    `, table)}
}

func (s *CHListingStore) Search(ctx context.Context, q models.ListingQuery) ([]models.PropertyRecord, error) {
	start := time.Now()
	const qtpl = `
        SELECT area, property_type, bedrooms, bathrooms, size_sqft, price_aed
        FROM %s
        WHERE area = ? AND property_type = ? AND bedrooms = ?
          AND price_aed >= ? AND price_aed <= ?
          AND size_sqft >= ? AND size_sqft <= ?
        ORDER BY listed_at DESC
        LIMIT 25
    `
	query := fmt.Sprintf(qtpl, s.table)
	rows, err := s.db.QueryContext(ctx, query,
		q.Area, q.PropertyType, q.Bedrooms, q.MinPrice, q.MaxPrice, q.MinSize, q.MaxSize)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse listings query error",
				applogger.String("area", q.Area),
				applogger.String("type", q.PropertyType),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	out := make([]models.PropertyRecord, 0, 25)
	for rows.Next() {
		var p models.PropertyRecord
		if err := rows.Scan(&p.Area, &p.PropertyType, &p.Bedrooms, &p.Bathrooms, &p.SizeSqft, &p.PriceAED); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if s.l != nil {
		s.l.Debug("clickhouse listings ok",
			applogger.String("area", q.Area),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

var _ domrepo.ListingsProvider = (*CHListingStore)(nil)
