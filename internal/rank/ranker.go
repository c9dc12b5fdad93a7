// Package rank implements the ranking collaborator over pgvector: the
// composed query is embedded once, then postings are ordered by cosine
// similarity with an optional restriction to a previous result set.
package rank

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gigwork/jobchat/pkg/models"
	"github.com/gigwork/jobchat/pkg/repository"
)

// Limit caps one ranking response; semantic hits degrade quickly past the
// first handful.
const Limit = 10

// Embedder is the slice of the Ollama client the ranker needs.
type Embedder interface {
	Embed(ctx context.Context, model, text string) ([]float64, error)
}

// PGVectorRanker implements repository.Ranker.
type PGVectorRanker struct {
	pool     *pgxpool.Pool
	embedder Embedder
	model    string
	logger   *slog.Logger
}

var _ repository.Ranker = (*PGVectorRanker)(nil)

func New(pool *pgxpool.Pool, embedder Embedder, model string, logger *slog.Logger) *PGVectorRanker {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &PGVectorRanker{pool: pool, embedder: embedder, model: model, logger: logger}
}

// Rank embeds the query and returns ACTIVE postings whose similarity clears
// the threshold, most similar first. An empty list is a normal outcome.
func (r *PGVectorRanker) Rank(ctx context.Context, query string, opts repository.RankOptions) ([]models.JobPosting, error) {
	vector, err := r.embedder.Embed(ctx, r.model, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	sql := `SELECT id, company, title, location, hourly_wage, work_days,
			start_time, end_time, category, gender, age_groups, description,
			deadline, status, created_at,
			1 - (embedding <=> $1::vector) AS similarity
		FROM job_postings
		WHERE status = 'ACTIVE'
			AND embedding IS NOT NULL
			AND (1 - (embedding <=> $1::vector)) >= $2`
	args := []any{vectorLiteral(vector), opts.Threshold}

	if len(opts.RestrictTo) > 0 {
		sql += ` AND id = ANY($3)`
		args = append(args, opts.RestrictTo)
	}
	sql += ` ORDER BY embedding <=> $1::vector LIMIT ` + strconv.Itoa(Limit)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("rank query: %w", err)
	}
	defer rows.Close()

	out := make([]models.JobPosting, 0, Limit)
	for rows.Next() {
		var p models.JobPosting
		var sim float64
		if err := rows.Scan(
			&p.ID, &p.Company, &p.Title, &p.Location, &p.HourlyWage, &p.WorkDays,
			&p.StartTime, &p.EndTime, &p.Category, &p.Gender, &p.AgeGroups,
			&p.Description, &p.Deadline, &p.Status, &p.Created, &sim,
		); err != nil {
			return nil, fmt.Errorf("scan ranked posting: %w", err)
		}
		p.Similarity = &sim
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("rank executed",
		slog.Int("rows", len(out)),
		slog.Float64("threshold", opts.Threshold),
		slog.Int("restricted_to", len(opts.RestrictTo)),
	)
	return out, nil
}

// vectorLiteral renders an embedding in pgvector's text input form; the
// value is bound as a parameter and cast server-side.
func vectorLiteral(v []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
