package response

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/error/code"
	"resident-records-service/pkg/logger"
)

// ErrorBody is the JSON shape of every failure.
type ErrorBody struct {
	Success *bool    `json:"success,omitempty"`
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// JSON writes body with status.
func JSON(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// Message writes {"message": msg} with status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Fail writes the default message of errorCode with its status.
func Fail(c *gin.Context, errorCode int) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode))
}

// FailWithMessage writes a custom message with errorCode's status.
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{
		Code:    errorCode,
		Message: message,
	})
}

// Error maps err to a response. Domain errors keep their code, anything else
// is logged, reported to Sentry and surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	c.JSON(statusAndBody(c, err))
}

// AuthError is Error with the {"success": false} flag auth clients expect.
func AuthError(c *gin.Context, err error) {
	status, body := statusAndBody(c, err)
	failed := false
	body.Success = &failed
	c.JSON(status, body)
}

func statusAndBody(c *gin.Context, err error) (int, ErrorBody) {
	var domainErr *services.Error
	if errors.As(err, &domainErr) {
		return code.GetStatus(domainErr.Code), ErrorBody{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Fields:  domainErr.Fields,
		}
	}

	logger.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	_ = c.Error(err)

	return http.StatusInternalServerError, ErrorBody{
		Code:    code.ErrUnknown,
		Message: code.GetMessage(code.ErrUnknown),
	}
}

// BindError responds to a body that failed to decode.
func BindError(c *gin.Context) {
	Fail(c, code.ErrBind)
}

// BindFailure is the domain error for a body that failed to decode, for
// writers such as AuthError that take an error.
func BindFailure() error {
	return &services.Error{
		Kind:    services.ErrValidation,
		Code:    code.ErrBind,
		Message: code.GetMessage(code.ErrBind),
	}
}

// Unauthorized responds to a missing or invalid session.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	FailWithMessage(c, code.ErrTokenInvalid, message)
}

// Forbidden responds to a session without the required role.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrForbidden)
	}
	FailWithMessage(c, code.ErrForbidden, message)
}
