package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"adyenbridge/internal/config"
	"adyenbridge/internal/pay"
	"adyenbridge/internal/repository"
)

const expiryBatchSize = 100

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron     *cron.Cron
	cfg      *config.Config
	payments *repository.PaymentRepository
	logger   *zap.Logger
}

// New creates a new cron scheduler.
func New(cfg *config.Config, payments *repository.PaymentRepository, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		cfg:      cfg,
		payments: payments,
		logger:   logger,
	}
}

// Start registers and starts all cron jobs.
func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler...")

	// Expire abandoned payments - every 15 minutes
	s.cron.AddFunc("0 */15 * * * *", func() {
		s.logger.Debug("Running: expire abandoned payments")
		s.expireAbandonedPayments()
	})

	s.cron.Start()
}

// Stop stops the scheduler and returns a context that is done once
// running jobs finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// expireAbandonedPayments marks open payments older than the pending TTL
// as expired. Shoppers who never returned from the provider leave these
// behind.
func (s *Scheduler) expireAbandonedPayments() {
	cutoff := time.Now().Add(-s.cfg.Adyen.PendingTTL)

	payments, err := s.payments.FindOpenBefore(cutoff, expiryBatchSize)
	if err != nil {
		s.logger.Error("Failed to load abandoned payments", zap.Error(err))
		return
	}

	for _, payment := range payments {
		payment.Status = pay.StatusExpired

		if err := s.payments.Save(payment); err != nil {
			s.logger.Error("Failed to expire payment",
				zap.String("payment_id", payment.ID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("Expired abandoned payment", zap.String("payment_id", payment.ID))
	}
}
