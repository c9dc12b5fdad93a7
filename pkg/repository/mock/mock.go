package mock

import (
	"context"

	"github.com/gigwork/jobchat/pkg/models"
	"github.com/gigwork/jobchat/pkg/repository"
)

// Test helpers and mocks for the collaborator interfaces.
type Mocks struct {
	Extractor *Extractor
	Catalog   *Catalog
	Ranker    *Ranker
	Results   *ResultStore
}

func NewMocks() *Mocks {
	return &Mocks{
		Extractor: &Extractor{},
		Catalog:   &Catalog{},
		Ranker:    &Ranker{},
		Results:   &ResultStore{},
	}
}

type Extractor struct {
	Out      *repository.Extraction
	Err      error
	LastText string
}

func (m *Extractor) Extract(ctx context.Context, text string) (*repository.Extraction, error) {
	m.LastText = text
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Out == nil {
		return &repository.Extraction{}, nil
	}
	return m.Out, nil
}

type Catalog struct {
	Rows     []models.JobPosting
	Err      error
	LastCond models.Condition
	Calls    int
}

func (m *Catalog) SearchActive(ctx context.Context, cond models.Condition) ([]models.JobPosting, error) {
	m.Calls++
	m.LastCond = cond
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows, nil
}

type Ranker struct {
	Rows      []models.JobPosting
	Err       error
	LastQuery string
	LastOpts  repository.RankOptions
	Calls     int
}

func (m *Ranker) Rank(ctx context.Context, query string, opts repository.RankOptions) ([]models.JobPosting, error) {
	m.Calls++
	m.LastQuery = query
	m.LastOpts = opts
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows, nil
}

type ResultStore struct {
	Saved   map[string][]int64
	LoadErr error
	SaveErr error
}

func (m *ResultStore) SaveResults(ctx context.Context, requesterID string, ids []int64) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Saved == nil {
		m.Saved = make(map[string][]int64)
	}
	m.Saved[requesterID] = ids
	return nil
}

func (m *ResultStore) LastResults(ctx context.Context, requesterID string) ([]int64, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Saved[requesterID], nil
}
