package workers

import (
	"context"
	"time"

	"yaadjobs_backend/internal/logger"
	"yaadjobs_backend/internal/repositories"
)

// featuredMaxAgeDays is how long a listing keeps its featured placement.
const featuredMaxAgeDays = 30

type ListingWorker struct {
	jobRepo repositories.JobRepository
}

func NewListingWorker(jobRepo repositories.JobRepository) *ListingWorker {
	return &ListingWorker{jobRepo: jobRepo}
}

// Start launches background maintenance for job listings.
func (w *ListingWorker) Start(ctx context.Context) {
	go w.expireFeatured(ctx)
}

// expireFeatured demotes stale featured listings every hour.
func (w *ListingWorker) expireFeatured(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Worker stopped", "worker", "listing")
			return
		case <-ticker.C:
			n, err := w.jobRepo.CloseExpiredFeatured(ctx, featuredMaxAgeDays)
			if err != nil {
				logger.WorkerLog("listing", "expire_featured", err)
			} else if n > 0 {
				logger.Info("Demoted expired featured listings", "count", n)
			}
		}
	}
}
