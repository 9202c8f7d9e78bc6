package repository

import (
	"errors"
	"time"

	"movieflix/domain"
	otpModel "movieflix/models/otp"

	"gorm.io/gorm"
)

// OTPRepository is the storage port for the password-reset ledger.
// Writes are append-only; rows disappear only through DeleteByID (lazy
// expiry during verification) or DeleteExpired (maintenance sweep).
type OTPRepository interface {
	Save(fp *otpModel.ForgotPassword) error
	FindByOTPAndUser(code int, userID uint) (*otpModel.ForgotPassword, error)
	DeleteByID(id uint) error
	DeleteExpired(before time.Time) (int64, error)
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Save(fp *otpModel.ForgotPassword) error {
	return r.db.Create(fp).Error
}

func (r *otpRepository) FindByOTPAndUser(code int, userID uint) (*otpModel.ForgotPassword, error) {
	var fp otpModel.ForgotPassword
	err := r.db.Where("otp = ? AND user_id = ?", code, userID).First(&fp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidOTP
		}
		return nil, err
	}
	return &fp, nil
}

func (r *otpRepository) DeleteByID(id uint) error {
	return r.db.Delete(&otpModel.ForgotPassword{}, id).Error
}

func (r *otpRepository) DeleteExpired(before time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", before).Delete(&otpModel.ForgotPassword{})
	return res.RowsAffected, res.Error
}
