package types

import "time"

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// LogEntry is the in-flight form of an audit record before the async
// logger persists it.
type LogEntry struct {
	Method          string
	URL             string
	ClientIP        string
	RequestBody     string
	RequestHeaders  string
	ResponseBody    string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
