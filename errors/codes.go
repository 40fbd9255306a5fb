package errors

// ErrorCode identifies an application error category on the wire.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1006

	// Session
	ErrorCode_SESSION_INVALID_TOKEN ErrorCode = 2000
	ErrorCode_SESSION_TOKEN_EXPIRED ErrorCode = 2001

	// Calendar
	ErrorCode_CALENDAR_ITEM_NOT_FOUND ErrorCode = 3000
	ErrorCode_CALENDAR_INVALID_DATE   ErrorCode = 3001
	ErrorCode_CALENDAR_STALE_SNAPSHOT ErrorCode = 3002

	// Upstream API
	ErrorCode_UPSTREAM_UNAVAILABLE   ErrorCode = 4000
	ErrorCode_UPSTREAM_REJECTED      ErrorCode = 4001
	ErrorCode_UPSTREAM_RESYNC_FAILED ErrorCode = 4002
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_UNAUTHENTICATED:         "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_SESSION_INVALID_TOKEN:   "SESSION_INVALID_TOKEN",
	ErrorCode_SESSION_TOKEN_EXPIRED:   "SESSION_TOKEN_EXPIRED",
	ErrorCode_CALENDAR_ITEM_NOT_FOUND: "CALENDAR_ITEM_NOT_FOUND",
	ErrorCode_CALENDAR_INVALID_DATE:   "CALENDAR_INVALID_DATE",
	ErrorCode_CALENDAR_STALE_SNAPSHOT: "CALENDAR_STALE_SNAPSHOT",
	ErrorCode_UPSTREAM_UNAVAILABLE:    "UPSTREAM_UNAVAILABLE",
	ErrorCode_UPSTREAM_REJECTED:       "UPSTREAM_REJECTED",
	ErrorCode_UPSTREAM_RESYNC_FAILED:  "UPSTREAM_RESYNC_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
