// Package postgres implements the catalog contract over a pgx pool. A
// connection is acquired for the duration of one compiled-query execution
// and released immediately after; no transaction spans turns.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gigwork/jobchat/internal/search"
	"github.com/gigwork/jobchat/pkg/models"
	"github.com/gigwork/jobchat/pkg/repository"
)

const postingColumns = `id, company, title, location, hourly_wage, work_days,
	start_time, end_time, category, gender, age_groups, description,
	deadline, status, created_at`

// CatalogRepo runs filter searches against the job_postings table.
type CatalogRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ repository.Catalog = (*CatalogRepo)(nil)

func New(pool *pgxpool.Pool, logger *slog.Logger) *CatalogRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &CatalogRepo{pool: pool, logger: logger}
}

// SearchActive compiles the condition and executes it over ACTIVE postings,
// newest first, capped at search.MaxResults rows. Compilation errors
// (including *condition.ValidationError) pass through unwrapped so the
// router can classify them.
func (r *CatalogRepo) SearchActive(ctx context.Context, cond models.Condition) ([]models.JobPosting, error) {
	q, err := search.Compile(cond)
	if err != nil {
		return nil, err
	}

	sql := `SELECT ` + postingColumns + ` FROM job_postings WHERE status = 'ACTIVE'`
	if !q.Empty() {
		where, rerr := q.Render(1)
		if rerr != nil {
			return nil, fmt.Errorf("render compiled query: %w", rerr)
		}
		sql += " AND " + where
	}
	sql += " ORDER BY created_at DESC LIMIT " + strconv.Itoa(search.MaxResults)

	rows, err := r.pool.Query(ctx, sql, q.Args()...)
	if err != nil {
		return nil, fmt.Errorf("filter search query: %w", err)
	}
	defer rows.Close()

	out, err := scanPostings(rows)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("filter search executed", slog.Int("rows", len(out)))
	return out, nil
}

func scanPostings(rows pgx.Rows) ([]models.JobPosting, error) {
	out := make([]models.JobPosting, 0)
	for rows.Next() {
		var p models.JobPosting
		if err := rows.Scan(
			&p.ID, &p.Company, &p.Title, &p.Location, &p.HourlyWage, &p.WorkDays,
			&p.StartTime, &p.EndTime, &p.Category, &p.Gender, &p.AgeGroups,
			&p.Description, &p.Deadline, &p.Status, &p.Created,
		); err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
