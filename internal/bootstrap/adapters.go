package bootstrap

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/workforce-hrms/admin-ui/config"
	"github.com/workforce-hrms/admin-ui/internal/adapters/hrms"
	"github.com/workforce-hrms/admin-ui/internal/adapters/memory"
	redisstore "github.com/workforce-hrms/admin-ui/internal/adapters/redis"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// AdapterContainer holds the outbound adapters the services are built on.
type AdapterContainer struct {
	Backend  *hrms.Client
	Sessions ports.SessionStore

	// RedisClient is non-nil only when Redis is the active session store;
	// callers close it on shutdown.
	RedisClient *goredis.Client
}

// InitAdapters constructs the backend client and the session store.
//
// Redis is preferred for sessions so they survive a restart. When Redis is
// not configured or does not answer a ping, the in-process store is used
// instead; logins then live only as long as the process, which is an
// acceptable degradation because a session is re-derived by logging in again.
func InitAdapters(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) *AdapterContainer {
	if logger == nil {
		logger = slog.Default()
	}

	backend := hrms.NewClient(hrms.Config{
		BaseURL:        cfg.Backend.BaseURL,
		RequestTimeout: cfg.Backend.RequestTimeout,
		Logger:         logger,
	})

	sessions, redisClient := initSessionStore(ctx, cfg.Session, logger)

	return &AdapterContainer{
		Backend:     backend,
		Sessions:    sessions,
		RedisClient: redisClient,
	}
}

func initSessionStore(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (ports.SessionStore, *goredis.Client) {
	if cfg.RedisAddr == "" {
		logger.Info("session store: in-memory (no Redis address configured)")
		return memory.NewSessionStore(), nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("session store: Redis unreachable, falling back to in-memory",
			slog.String("addr", cfg.RedisAddr),
			slog.Any("error", err),
		)
		_ = client.Close()
		return memory.NewSessionStore(), nil
	}

	logger.Info("session store: Redis", slog.String("addr", cfg.RedisAddr))
	return redisstore.NewSessionStoreWithPrefix(client, cfg.KeyPrefix), client
}

// Close releases adapter resources.
func (a *AdapterContainer) Close() {
	if a == nil || a.RedisClient == nil {
		return
	}
	_ = a.RedisClient.Close()
}
