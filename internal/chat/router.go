package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gigwork/jobchat/internal/condition"
	"github.com/gigwork/jobchat/internal/search"
	"github.com/gigwork/jobchat/pkg/models"
	"github.com/gigwork/jobchat/pkg/repository"
)

// DefaultSimilarityThreshold applies when the caller sends none.
const DefaultSimilarityThreshold = 0.1

// Router drives one turn from Start to Done. It holds only collaborators,
// never per-turn state, so a single Router serves concurrent turns.
type Router struct {
	extractor repository.Extractor
	catalog   repository.Catalog
	ranker    repository.Ranker
	results   repository.ResultStore
	logger    *slog.Logger
}

func NewRouter(
	extractor repository.Extractor,
	catalog repository.Catalog,
	ranker repository.Ranker,
	results repository.ResultStore,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Router{
		extractor: extractor,
		catalog:   catalog,
		ranker:    ranker,
		results:   results,
		logger:    logger,
	}
}

// Run routes the turn and always reaches Done with a well-formed outcome.
// Collaborator failures become replies; they do not propagate.
func (r *Router) Run(ctx context.Context, turn *models.Turn) *models.Outcome {
	out := &models.Outcome{
		Condition: turn.Condition,
		Result:    []models.JobPosting{},
	}

	state := StateStart
	for state != StateDone {
		next, err := Next(state, turn)
		if err != nil {
			// unreachable with a well-formed machine
			r.logger.Error("router transition failed", slog.String("state", string(state)), slog.Any("err", err))
			out.Reply = ReplySearchFailed
			return out
		}
		state = next

		switch state {
		case StateExtracting:
			r.extract(ctx, turn, out)
		case StateFilterSearch:
			r.filterSearch(ctx, turn, out)
		case StateHybridSearch:
			r.hybridSearch(ctx, turn, out)
		}
	}

	return out
}

func (r *Router) extract(ctx context.Context, turn *models.Turn, out *models.Outcome) {
	ext, err := r.extractor.Extract(ctx, turn.Text)
	if err != nil {
		r.logger.Error("extraction collaborator failed", slog.Any("err", err))
		out.Reply = ReplyExtractionFailed
		return
	}

	out.JobRelated = &ext.JobRelated
	if !ext.JobRelated {
		// designed refusal: condition stays untouched
		out.Reply = ReplyRefusal
		return
	}

	out.Condition = condition.Merge(turn.Condition, ext.Condition)
	out.Reply = ReplyConditionUpdated
}

func (r *Router) filterSearch(ctx context.Context, turn *models.Turn, out *models.Outcome) {
	rows, err := r.catalog.SearchActive(ctx, turn.Condition)
	if err != nil {
		var verr *condition.ValidationError
		if errors.As(err, &verr) {
			r.logger.Info("filter search rejected condition", slog.String("field", verr.Field), slog.String("reason", verr.Reason))
			out.Reply = ReplyConditionInvalid
			return
		}
		r.logger.Error("filter search failed", slog.Any("err", err))
		out.Reply = ReplySearchFailed
		return
	}

	if len(rows) == 0 {
		out.Reply = ReplyNoMatch
		return
	}

	out.Result = rows
	out.Reply = fmt.Sprintf("조건 검색으로 %d개의 공고를 찾았습니다.", len(rows))
	r.saveResults(ctx, turn.RequesterID, rows)
}

func (r *Router) hybridSearch(ctx context.Context, turn *models.Turn, out *models.Outcome) {
	query := search.Compose(turn.Condition, turn.Text)
	if query == "" {
		out.Reply = ReplyNoCriteria
		return
	}

	opts := repository.RankOptions{Threshold: turn.SimilarityThreshold}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultSimilarityThreshold
	}

	inResults := turn.SearchInResults && turn.RequesterID != ""
	if inResults {
		ids, err := r.results.LastResults(ctx, turn.RequesterID)
		if err != nil {
			r.logger.Error("previous-result lookup failed", slog.Any("err", err))
			out.Reply = ReplySearchFailed
			return
		}
		if len(ids) == 0 {
			out.Reply = ReplyNoMatchInResults
			return
		}
		opts.RestrictTo = ids
	}

	rows, err := r.ranker.Rank(ctx, query, opts)
	if err != nil {
		r.logger.Error("ranking collaborator failed", slog.Any("err", err))
		out.Reply = ReplySearchFailed
		return
	}

	if len(rows) == 0 {
		if inResults {
			out.Reply = ReplyNoMatchInResults
		} else {
			out.Reply = ReplyNoMatch
		}
		return
	}

	out.Result = rows
	out.Reply = hybridReply(query, rows, inResults)
	r.saveResults(ctx, turn.RequesterID, rows)
}

// hybridReply renders the composed query, the hit count, and a numbered
// similarity list the UI shows alongside the result panel.
func hybridReply(query string, rows []models.JobPosting, inResults bool) string {
	var sb strings.Builder
	if inResults {
		sb.WriteString("결과내검색 완료!\n\n")
	}
	sb.WriteString(query)
	fmt.Fprintf(&sb, "\n\n검색 결과 %d개의 일자리를 찾았습니다. 우측 패널에서 확인하세요.\n\n", len(rows))

	for i, row := range rows {
		pct := 0.0
		if row.Similarity != nil {
			pct = *row.Similarity * 100
		}
		company := row.Company
		if company == "" {
			company = "회사명 없음"
		}
		title := row.Title
		if title == "" {
			title = "제목 없음"
		}
		fmt.Fprintf(&sb, "%d. [%.1f%%] %s - %s", i+1, pct, company, title)
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// saveResults remembers what the requester just saw so the next turn can
// search within it. Best effort: a store outage must not fail the turn.
func (r *Router) saveResults(ctx context.Context, requesterID string, rows []models.JobPosting) {
	if requesterID == "" || r.results == nil {
		return
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	if err := r.results.SaveResults(ctx, requesterID, ids); err != nil {
		r.logger.Warn("saving result set failed", slog.String("requester", requesterID), slog.Any("err", err))
	}
}
