package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"movieflix/config"
	"movieflix/constants"
	"movieflix/domain"
	"movieflix/httpServices/mail"
	"movieflix/logger"
	otpModel "movieflix/models/otp"
	"movieflix/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service implements the password-reset flow over the OTP ledger.
type Service struct {
	otpRepo  repository.OTPRepository
	userRepo repository.UserRepository
	mailer   mail.Mailer
	expiry   time.Duration
}

func NewOTPService(otpRepo repository.OTPRepository, userRepo repository.UserRepository, mailer mail.Mailer, cfg *config.Config) *Service {
	return &Service{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mailer:   mailer,
		expiry:   cfg.OTPExpiry,
	}
}

// GenerateOTP draws a uniform random code in [100000, 999999).
func GenerateOTP() (int, error) {
	span := big.NewInt(int64(constants.OTPMax - constants.OTPMin))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + constants.OTPMin, nil
}

// RequestOTP issues a fresh OTP for the user behind email and mails it.
// Outstanding codes for the same user stay valid; several pending
// records may coexist. The mail goes out on a goroutine after the
// ledger write and its outcome is only logged.
func (s *Service) RequestOTP(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}

	code, err := GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	record := otpModel.ForgotPassword{
		OTP:       code,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.expiry),
	}
	if err := s.otpRepo.Save(&record); err != nil {
		return fmt.Errorf("failed to save otp record: %w", err)
	}

	go func() {
		subject := "OTP for Forgot Password request"
		body := fmt.Sprintf("This is the OTP for your password reset request: %d", code)
		if err := s.mailer.Send(email, subject, body); err != nil {
			logger.Error("Failed to send OTP email to "+email, err)
		}
	}()

	return nil
}

// VerifyOTP checks the (otp, user) pair. An expired record is deleted on
// the spot and reported as expired. A successful verification leaves the
// record in the ledger, so the same code keeps working until its expiry.
func (s *Service) VerifyOTP(code int, email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}

	record, err := s.otpRepo.FindByOTPAndUser(code, user.ID)
	if err != nil {
		return err
	}

	if record.IsExpired() {
		if err := s.otpRepo.DeleteByID(record.ID); err != nil {
			logger.Error("Failed to delete expired otp record", err)
		}
		return domain.ErrOTPExpired
	}

	return nil
}

// ChangePassword hashes and stores the new password for the user behind
// email. It is callable without a prior successful verification; the
// flow does not track OTP consumption.
func (s *Service) ChangePassword(email, password, repeatedPassword string) error {
	if password != repeatedPassword {
		return domain.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(email, string(hashed))
}

// CleanupExpired drops every ledger row whose validity window has
// passed. Verification already deletes expired rows lazily; this catches
// the ones nobody ever tried.
func (s *Service) CleanupExpired() (int64, error) {
	return s.otpRepo.DeleteExpired(time.Now())
}
