package workers

import (
	"context"
	"time"

	"yaadjobs_backend/internal/logger"
	"yaadjobs_backend/internal/repositories"
)

type TokenWorker struct {
	tokenRepo repositories.RefreshTokenRepository
}

func NewTokenWorker(tokenRepo repositories.RefreshTokenRepository) *TokenWorker {
	return &TokenWorker{tokenRepo: tokenRepo}
}

// Start launches periodic cleanup of expired refresh tokens.
func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanupExpired(ctx)
}

func (w *TokenWorker) cleanupExpired(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Worker stopped", "worker", "token")
			return
		case <-ticker.C:
			n, err := w.tokenRepo.DeleteExpired(ctx)
			if err != nil {
				logger.WorkerLog("token", "cleanup_expired", err)
			} else if n > 0 {
				logger.Info("Deleted expired refresh tokens", "count", n)
			}
		}
	}
}
