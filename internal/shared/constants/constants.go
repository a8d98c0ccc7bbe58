package constants

const (
	// Default pagination
	DefaultPage    = 1
	TicketPageSize = 10

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"

	// Content Types
	ContentTypeJSON = "application/json"

	// Upload ceilings, enforced client-side before any bytes go out
	MaxAvatarBytes   = 5 * 1024 * 1024
	MaxDocumentBytes = 10 * 1024 * 1024

	// Error messages
	ErrMsgServerFailure    = "The server could not process the request"
	ErrMsgTransportFailure = "Could not reach the server"
	ErrMsgUnauthorized     = "You are not logged in"
	ErrMsgValidationFailed = "Validation failed"
)
