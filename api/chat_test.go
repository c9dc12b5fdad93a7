package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gigwork/jobchat/internal/chat"
	"github.com/gigwork/jobchat/pkg/models"
	"github.com/gigwork/jobchat/pkg/repository"
	"github.com/gigwork/jobchat/pkg/repository/mock"
)

func newChatServer(t *testing.T, m *mock.Mocks) *httptest.Server {
	t.Helper()
	router := chat.NewRouter(m.Extractor, m.Catalog, m.Ranker, m.Results, slog.New(slog.DiscardHandler))
	h := NewChatHandler(router)
	srv := httptest.NewServer(http.HandlerFunc(h.Chat))
	t.Cleanup(srv.Close)
	return srv
}

func postChat(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	resp, err := http.Post(srv.URL, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /chat: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	var out map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, out
}

func TestChat_ExtractionTurn(t *testing.T) {
	m := mock.NewMocks()
	m.Extractor.Out = &repository.Extraction{
		JobRelated: true,
		Condition:  models.Condition{Place: "서울시", Category: "카페/음료"},
	}
	srv := newChatServer(t, m)

	resp, out := postChat(t, srv, `{"text": "서울에서 카페 알바 찾아요", "condition": {}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	if string(out["job_related"]) != "true" {
		t.Errorf("job_related = %s", out["job_related"])
	}

	var cond models.Condition
	if err := json.Unmarshal(out["condition"], &cond); err != nil {
		t.Fatalf("condition: %v", err)
	}
	if cond.Place != "서울시" || cond.Category != "카페/음료" {
		t.Errorf("condition = %+v", cond)
	}
	if cond.Requirements != "서울에서 카페 알바 찾아요" {
		t.Errorf("requirements = %q, want the typed text", cond.Requirements)
	}

	var reply string
	if err := json.Unmarshal(out["reply"], &reply); err != nil || reply != chat.ReplyConditionUpdated {
		t.Errorf("reply = %q (%v)", reply, err)
	}
	if string(out["result"]) != "[]" {
		t.Errorf("result = %s, want empty array not null", out["result"])
	}
}

func TestChat_SearchTurn(t *testing.T) {
	m := mock.NewMocks()
	m.Catalog.Rows = []models.JobPosting{{ID: 4, Company: "카페달", Title: "바리스타"}}
	srv := newChatServer(t, m)

	resp, out := postChat(t, srv, `{
		"search": true,
		"requester_id": "req-1",
		"condition": {"place": "서울시", "hourly_wage": 12000, "work_days": ["월","화"]}
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if m.Catalog.LastCond.Place != "서울시" {
		t.Errorf("catalog saw place %q", m.Catalog.LastCond.Place)
	}
	if m.Catalog.LastCond.HourlyWage != "12000" {
		t.Errorf("numeric wage should normalize to string, got %q", m.Catalog.LastCond.HourlyWage)
	}
	if m.Catalog.LastCond.WorkDays != "월,화" {
		t.Errorf("work_days array should join, got %q", m.Catalog.LastCond.WorkDays)
	}

	var rows []models.JobPosting
	if err := json.Unmarshal(out["result"], &rows); err != nil {
		t.Fatalf("result: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != 4 {
		t.Errorf("result = %+v", rows)
	}
	if _, ok := out["job_related"]; ok {
		t.Error("search turns carry no job_related key")
	}
}

func TestChat_HybridSearchTurn(t *testing.T) {
	m := mock.NewMocks()
	m.Ranker.Rows = []models.JobPosting{{ID: 8, Company: "카페달", Title: "바리스타"}}
	srv := newChatServer(t, m)

	resp, _ := postChat(t, srv, `{"search": true, "text": "바리스타", "similarity_threshold": 0.4}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if m.Ranker.Calls != 1 {
		t.Fatalf("ranker calls = %d", m.Ranker.Calls)
	}
	if m.Ranker.LastOpts.Threshold != 0.4 {
		t.Errorf("threshold = %v", m.Ranker.LastOpts.Threshold)
	}
	if !strings.Contains(m.Ranker.LastQuery, "바리스타") {
		t.Errorf("ranker query = %q", m.Ranker.LastQuery)
	}
	if !strings.Contains(m.Ranker.LastQuery, "기타(바리스타)") {
		t.Errorf("typed text should appear as a requirements clause, got %q", m.Ranker.LastQuery)
	}
}

func TestChat_MalformedJSON(t *testing.T) {
	srv := newChatServer(t, mock.NewMocks())

	resp, _ := postChat(t, srv, `{"text": `)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
