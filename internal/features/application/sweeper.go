package application

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// certSweepSchedule is how often the sweeper retries issuance for Completed
// applications that still have no certificate reference.
const certSweepSchedule = "@every 30m"

// CertificateSweeper runs the issuance retry on a fixed schedule.
type CertificateSweeper struct {
	Service ApplicationService
	Logger  *zap.Logger

	scheduler *cron.Cron
}

func NewCertificateSweeper(service ApplicationService, logger *zap.Logger) *CertificateSweeper {
	return &CertificateSweeper{
		Service: service,
		Logger:  logger,
	}
}

func (s *CertificateSweeper) InitializeScheduler(ctx context.Context) error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(certSweepSchedule, s.sweep)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

func (s *CertificateSweeper) StopScheduler() error {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
	return nil
}

func (s *CertificateSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	issued, err := s.Service.RetryMissingCertificates(ctx)
	if err != nil {
		s.Logger.Warn("certificate sweep failed", zap.Error(err))
		return
	}
	if issued > 0 {
		s.Logger.Info("certificate sweep issued missing documents",
			zap.Int("issued", issued))
	}
}
