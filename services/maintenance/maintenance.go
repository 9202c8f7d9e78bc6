package maintenance

import (
	"fmt"
	"time"

	"movieflix/config"
	"movieflix/logger"
	otpService "movieflix/services/otp"
)

// Sweeper periodically removes expired OTP rows and stale audit logs.
// It is housekeeping only; the reset flow never depends on it (expired
// OTPs are also deleted lazily at verification time).
type Sweeper struct {
	otp      *otpService.Service
	audit    *logger.AsyncLogger
	interval time.Duration
	cfg      *config.Config
}

func NewSweeper(otp *otpService.Service, audit *logger.AsyncLogger, cfg *config.Config) *Sweeper {
	return &Sweeper{
		otp:      otp,
		audit:    audit,
		interval: 10 * time.Minute,
		cfg:      cfg,
	}
}

// Run blocks; start it on its own goroutine.
func (s *Sweeper) Run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		s.sweep()
	}
}

func (s *Sweeper) sweep() {
	if n, err := s.otp.CleanupExpired(); err != nil {
		logger.Error("Failed to clean up expired OTP records", err)
	} else if n > 0 {
		logger.Info(fmt.Sprintf("Removed %d expired OTP records", n))
	}

	if n, err := s.audit.PurgeOlderThan(s.cfg.LogRetentionDays); err != nil {
		logger.Error("Failed to purge old audit logs", err)
	} else if n > 0 {
		logger.Info(fmt.Sprintf("Purged %d audit log rows past retention", n))
	}
}
