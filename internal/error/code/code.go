package code

// HTTP statuses.
const (
	// StatusOK - 200: ok.
	StatusOK = 200
	// StatusCreated - 201: created.
	StatusCreated = 201
	// StatusBadRequest - 400: bad request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflict.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal error.
	StatusInternalServerError = 500
)

// Common codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unexpected failure.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTokenInvalid - 401: missing or invalid session token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
	// ErrForbidden - 403: session lacks the required role.
	ErrForbidden
)

// Account codes (101xxx).
const (
	// ErrUserAlreadyExist - 409: email already registered.
	ErrUserAlreadyExist int = iota + 101000
	// ErrInvalidCredentials - 401: unknown email or wrong password.
	ErrInvalidCredentials
	// ErrRoleRequired - 400: login without a role.
	ErrRoleRequired
	// ErrRoleMismatch - 403: supplied role differs from the stored one.
	ErrRoleMismatch
)

// Resident codes (103xxx).
const (
	// ErrResidentNotFound - 404: resident does not exist.
	ErrResidentNotFound int = iota + 103000
	// ErrResidentAlreadyExist - 409: resident id already taken.
	ErrResidentAlreadyExist
	// ErrResidentFieldsMissing - 400: create without every required field.
	ErrResidentFieldsMissing
	// ErrResidentNoUpdates - 400: update without any field.
	ErrResidentNoUpdates
)

// QR codes (104xxx).
const (
	// ErrQRTokenNotFound - 404: unknown QR token.
	ErrQRTokenNotFound int = iota + 104000
	// ErrQRTokenExpired - 401: QR token past its expiration.
	ErrQRTokenExpired
	// ErrQRRender - 500: QR image could not be rendered.
	ErrQRRender
)
