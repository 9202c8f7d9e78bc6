package constants

// Pagination defaults, used when the query string omits them.
const (
	DefaultPageNumber    = 0
	DefaultPageSize      = 3
	DefaultSortBy        = "title"
	DefaultSortDirection = "asc"
)

// OTP lifecycle defaults.
const (
	OTPMin           = 100000 // inclusive
	OTPMax           = 999999 // exclusive
	OTPExpirySeconds = 70
)

// PosterURLPrefix is the public path segment under which poster files
// are served; posterUrl = baseURL + PosterURLPrefix + filename.
const PosterURLPrefix = "/file/"
