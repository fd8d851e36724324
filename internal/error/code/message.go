package code

var codeMessageMap = map[int]string{
	ErrSuccess:         "Success",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Invalid request body",
	ErrValidation:      "Invalid request parameters",
	ErrTokenInvalid:    "Invalid or expired token",
	ErrTooManyRequests: "Too many requests, please try again later",
	ErrForbidden:       "Insufficient permissions",

	ErrUserAlreadyExist:   "User already exists",
	ErrInvalidCredentials: "Invalid email or password",
	ErrRoleRequired:       "Role is required",
	ErrRoleMismatch:       "Role mismatch",

	ErrResidentNotFound:      "Resident not found",
	ErrResidentAlreadyExist:  "Resident with this ID already exists",
	ErrResidentFieldsMissing: "All fields are required",
	ErrResidentNoUpdates:     "At least one field is required to update",

	ErrQRTokenNotFound: "Invalid QR code",
	ErrQRTokenExpired:  "QR code has expired",
	ErrQRRender:        "Failed to render QR code",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,

	ErrUserAlreadyExist:   StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrRoleRequired:       StatusBadRequest,
	ErrRoleMismatch:       StatusForbidden,

	ErrResidentNotFound:      StatusNotFound,
	ErrResidentAlreadyExist:  StatusConflict,
	ErrResidentFieldsMissing: StatusBadRequest,
	ErrResidentNoUpdates:     StatusBadRequest,

	ErrQRTokenNotFound: StatusNotFound,
	ErrQRTokenExpired:  StatusUnauthorized,
	ErrQRRender:        StatusInternalServerError,
}

// GetMessage returns the default message for a code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus returns the HTTP status for a code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
