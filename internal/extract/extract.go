// Package extract derives a job-relatedness flag and a partial condition
// from free text through one language-model round trip. Model output that
// cannot be parsed or fails schema validation degrades to an empty,
// unrelated extraction; it never errors the turn.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/qri-io/jsonschema"

	"github.com/gigwork/jobchat/pkg/models"
	"github.com/gigwork/jobchat/pkg/ollama"
	"github.com/gigwork/jobchat/pkg/repository"
)

// conditionSchema validates the shape of the model's output before any value
// reaches the merger. Field values stay loosely typed; models.Flex
// normalizes them during unmarshal.
const conditionSchema = `{
	"type": "object",
	"required": ["job_related"],
	"properties": {
		"job_related": {"type": "boolean"},
		"condition": {
			"type": "object",
			"properties": {
				"gender":       {"type": ["string", "null"]},
				"age":          {"type": ["string", "number", "null"]},
				"place":        {"type": ["string", "null"]},
				"work_days":    {"type": ["string", "array", "null"]},
				"start_time":   {"type": ["string", "null"]},
				"end_time":     {"type": ["string", "null"]},
				"hourly_wage":  {"type": ["string", "number", "null"]},
				"category":     {"type": ["string", "null"]},
				"requirements": {"type": ["string", "null"]}
			}
		}
	}
}`

// Generator is the slice of the Ollama client the engine needs.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type Config struct {
	Model          string        `yaml:"model"`
	Timeout        time.Duration `yaml:"timeout"`
	PromptTemplate string        `yaml:"prompt_template"`
}

// Engine implements repository.Extractor on top of an Ollama-style generator.
type Engine struct {
	client Generator
	cfg    Config
	schema *jsonschema.Schema
	logger *slog.Logger
}

var _ repository.Extractor = (*Engine)(nil)

func NewEngine(client Generator, cfg Config, logger *slog.Logger) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("generator client is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.PromptTemplate == "" {
		cfg.PromptTemplate = DefaultPromptTemplate
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(conditionSchema), rs); err != nil {
		return nil, fmt.Errorf("compile condition schema: %w", err)
	}

	return &Engine{client: client, cfg: cfg, schema: rs, logger: logger}, nil
}

// extractionPayload mirrors the JSON shape the prompt demands.
type extractionPayload struct {
	JobRelated bool             `json:"job_related"`
	Condition  models.Condition `json:"condition"`
}

// Extract runs one extraction round trip. The returned error is non-nil only
// when the collaborator itself is unreachable; malformed output degrades to
// job_related=false with an empty condition.
func (e *Engine) Extract(ctx context.Context, text string) (*repository.Extraction, error) {
	prompt, err := ollama.RenderTemplate(e.cfg.PromptTemplate, map[string]any{
		"Categories": strings.Join(Categories, ", "),
		"Text":       text,
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	ctxReq, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	out, err := e.client.Generate(ctxReq, e.cfg.Model, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return e.parse(ctxReq, out), nil
}

func (e *Engine) parse(ctx context.Context, out string) *repository.Extraction {
	degraded := &repository.Extraction{}

	j := extractJSON(out)
	if j == "" {
		e.logger.Warn("extract: no JSON object in model output", slog.String("raw", truncate(out, 200)))
		return degraded
	}

	verrs, err := e.schema.ValidateBytes(ctx, []byte(j))
	if err != nil || len(verrs) > 0 {
		e.logger.Warn("extract: output failed schema validation",
			slog.Any("err", err),
			slog.Int("violations", len(verrs)),
		)
		return degraded
	}

	var p extractionPayload
	if err := json.Unmarshal([]byte(j), &p); err != nil {
		e.logger.Warn("extract: output unmarshal failed", slog.Any("err", err))
		return degraded
	}

	return &repository.Extraction{JobRelated: p.JobRelated, Condition: p.Condition}
}

// extractJSON returns the substring from the first '{' to the last '}'.
// Pragmatic handling for model output that wraps JSON in prose or markdown.
func extractJSON(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return ""
	}
	return s[first : last+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
