package api

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gigwork/jobchat/internal/chat"
	"github.com/gigwork/jobchat/internal/config"
	"github.com/gigwork/jobchat/internal/extract"
	"github.com/gigwork/jobchat/internal/rank"
	"github.com/gigwork/jobchat/internal/repository/postgres"
	"github.com/gigwork/jobchat/internal/session"
	"github.com/gigwork/jobchat/pkg/ollama"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, pool *pgxpool.Pool, rdb *redis.Client, llm *ollama.Client) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Collaborators
	extractor, err := extract.NewEngine(llm, cfg.Extract, logger)
	if err != nil {
		return nil, fmt.Errorf("create extraction engine: %w", err)
	}
	catalog := postgres.New(pool, logger)
	ranker := rank.New(pool, llm, cfg.Ollama.EmbedModel, logger)
	results := session.New(rdb, cfg.ResultTTL)

	router := chat.NewRouter(extractor, catalog, ranker, results, logger)

	// Handlers
	systemHandler := NewSystemHandler(map[string]Pinger{
		"postgres": pool,
		"redis":    redisPinger{rdb},
	})
	chatHandler := NewChatHandler(router)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/chat", chatHandler.Chat).Methods("POST", "OPTIONS")

	return r, nil
}

// redisPinger adapts the redis client's StatusCmd Ping to the Pinger shape.
type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
