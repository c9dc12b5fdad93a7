package repository

import (
	"context"

	"github.com/gigwork/jobchat/pkg/models"
)

// Collaborator interfaces for one chat turn. These are the public contracts
// the router depends on; concrete implementations live under internal/.

// Extraction is the structured result of one language-model round trip.
// JobRelated=false with an empty condition is also the degraded form used
// when model output cannot be parsed.
type Extraction struct {
	JobRelated bool
	Condition  models.Condition
}

// Extractor classifies free text as job-related and derives a partial
// condition from it.
type Extractor interface {
	Extract(ctx context.Context, text string) (*Extraction, error)
}

// Catalog runs filter searches over ACTIVE job postings.
type Catalog interface {
	SearchActive(ctx context.Context, cond models.Condition) ([]models.JobPosting, error)
}

// RankOptions tune one ranking call.
type RankOptions struct {
	// Threshold drops rows below this similarity; zero falls back to the
	// service default.
	Threshold float64
	// RestrictTo limits ranking to these posting IDs when non-empty.
	RestrictTo []int64
}

// Ranker resolves a composed natural-language query to postings ordered by
// semantic similarity. An empty list is a valid, non-error response.
type Ranker interface {
	Rank(ctx context.Context, query string, opts RankOptions) ([]models.JobPosting, error)
}

// ResultStore remembers the posting IDs a requester last saw so a follow-up
// turn can search within them.
type ResultStore interface {
	SaveResults(ctx context.Context, requesterID string, ids []int64) error
	LastResults(ctx context.Context, requesterID string) ([]int64, error)
}
