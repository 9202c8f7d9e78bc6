package forgotpassword

import (
	"errors"
	"strconv"

	"movieflix/domain"
	"movieflix/logger"
	otpService "movieflix/services/otp"
	"movieflix/types"
	authTypes "movieflix/types/auth"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
)

// Controller handles the password-reset endpoints.
type Controller struct {
	service *otpService.Service
	logger  *logger.AsyncLogger
}

func NewForgotPasswordController(service *otpService.Service, asyncLogger *logger.AsyncLogger) *Controller {
	return &Controller{service: service, logger: asyncLogger}
}

// VerifyMail handles POST /forgotPassword/verifyMail/:email. It issues a
// fresh OTP and mails it; earlier pending OTPs stay valid.
func (fc *Controller) VerifyMail(c *fiber.Ctx) error {
	email := c.Params("email")

	if err := fc.service.RequestOTP(email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "No user found with that email",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to issue OTP", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	fc.audit(c)
	logger.Success("OTP issued for " + email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Verification code sent to your email",
		Status:  fiber.StatusOK,
	})
}

// VerifyOtp handles POST /forgotPassword/verifyOtp/:otp/:email. Expired
// codes are removed from the ledger and answered with 417.
func (fc *Controller) VerifyOtp(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("otp"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "OTP must be numeric",
			Status:  fiber.StatusBadRequest,
		})
	}
	email := c.Params("email")

	if err := fc.service.VerifyOTP(code, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "No user found with that email",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, domain.ErrInvalidOTP):
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Invalid OTP",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, domain.ErrOTPExpired):
			return c.Status(fiber.StatusExpectationFailed).JSON(types.ErrorResponse{
				Message: "OTP has expired",
				Status:  fiber.StatusExpectationFailed,
			})
		default:
			logger.Error("Failed to verify OTP", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Internal server error",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	fc.audit(c)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "OTP verified",
		Status:  fiber.StatusOK,
	})
}

// ChangePassword handles POST /forgotPassword/changePassword/:email.
// Mismatched passwords answer 417. A prior successful OTP verification
// is not required here.
func (fc *Controller) ChangePassword(c *fiber.Ctx) error {
	email := c.Params("email")

	var req authTypes.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: msg,
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := fc.service.ChangePassword(email, req.Password, req.RepeatedPassword); err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			return c.Status(fiber.StatusExpectationFailed).JSON(types.ErrorResponse{
				Message: "Please enter the same password twice",
				Status:  fiber.StatusExpectationFailed,
			})
		}
		logger.Error("Failed to change password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	fc.audit(c)
	logger.Success("Password changed for " + email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password has been reset",
		Status:  fiber.StatusOK,
	})
}

func (fc *Controller) audit(c *fiber.Ctx) {
	if fc.logger != nil {
		fc.logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}
