package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const tableRounds = "rounds"

var roundColumns = []string{"sequence", "round_id", "played_at", "total", "ordering", "points"}

// roundRepo implements RoundRepo with ent's SQL builder.
type roundRepo struct {
	drv *entsql.Driver
}

// insertRoundQuery builds the INSERT for rec. Ordering and points are
// stored as JSON text.
func insertRoundQuery(rec RoundRecord) (string, []any, error) {
	ordering, err := json.Marshal(rec.Ordering)
	if err != nil {
		return "", nil, fmt.Errorf("marshal ordering: %w", err)
	}
	points, err := json.Marshal(rec.Points)
	if err != nil {
		return "", nil, fmt.Errorf("marshal points: %w", err)
	}

	playedAt := rec.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableRounds).
		Columns("round_id", "played_at", "total", "ordering", "points").
		Values(rec.RoundID, playedAt.UnixMilli(), rec.Total, string(ordering), string(points)).
		Query()
	return query, args, nil
}

// listRoundsQuery selects rounds newest first, capped at limit when positive.
func listRoundsQuery(limit int) (string, []any) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(roundColumns...).
		From(b.Table(tableRounds)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}
	return sel.Query()
}

func (r *roundRepo) AppendRound(ctx context.Context, rec RoundRecord) error {
	query, args, err := insertRoundQuery(rec)
	if err != nil {
		return err
	}
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

func (r *roundRepo) ListRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	query, args := listRoundsQuery(opts.Limit)

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var (
			rec              RoundRecord
			playedAt         int64
			ordering, points string
		)
		if err := rows.Scan(&rec.Sequence, &rec.RoundID, &playedAt, &rec.Total, &ordering, &points); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		if err := json.Unmarshal([]byte(ordering), &rec.Ordering); err != nil {
			return nil, fmt.Errorf("decode ordering of round %s: %w", rec.RoundID, err)
		}
		if err := json.Unmarshal([]byte(points), &rec.Points); err != nil {
			return nil, fmt.Errorf("decode points of round %s: %w", rec.RoundID, err)
		}
		rec.PlayedAt = time.UnixMilli(playedAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}
	return out, nil
}
