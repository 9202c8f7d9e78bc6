package domain

import "errors"

// Domain failure values. Callers branch on these with errors.Is; anything
// not listed here (filesystem faults, database errors) propagates as-is
// and surfaces as an internal error.
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyFile        = errors.New("uploaded file is empty")
	ErrFileExists       = errors.New("file already exists")
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidOTP       = errors.New("invalid otp")
	ErrOTPExpired       = errors.New("otp has expired")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
