package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/error/code"
	"resident-records-service/internal/error/response"
	"resident-records-service/pkg/logger"
)

// QR image modes accepted by GetQRCode.
const (
	QRTypeContact = "contact"
	QRTypeToken   = "token"
)

// InterfaceQRController defines the QR controller interface
type InterfaceQRController interface {
	IssueToken()
	VerifyToken()
	VerifyResident()
	GetQRCode()
}

// QRController handles QR token issuance, verification and rendering
type QRController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewQRController creates a new QR controller
func NewQRController(ctx *gin.Context, container *container.ServiceContainer) *QRController {
	return &QRController{
		Ctx:       ctx,
		Container: container,
	}
}

// VerifiedResponse is returned by both verification endpoints
type VerifiedResponse struct {
	Verified bool                   `json:"verified" example:"true"`
	Resident models.ResidentSummary `json:"resident"`
}

func (c *QRController) qrService() services.InterfaceQRTokenService {
	return c.Container.GetService("qr_token").(services.InterfaceQRTokenService)
}

// IssueToken issues a QR token for a resident
// @Summary      Issue a QR token
// @Description  Binds a random token, valid for 24 hours, to the resident
// @Tags         QR
// @Produce      json
// @Param        id path string true "Resident ID"
// @Security     BearerAuth
// @Success      200  {object}  services.IssuedToken
// @Failure      404  {object}  ErrorResponse
// @Router       /api/residents/{id}/qr-token [post]
func (c *QRController) IssueToken() {
	issued, err := c.qrService().Issue(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, issued)
}

// VerifyToken resolves a QR token
// @Summary      Verify a QR token
// @Description  Returns the reduced resident view for a live token
// @Tags         QR
// @Produce      json
// @Param        token path string true "QR token"
// @Success      200  {object}  VerifiedResponse
// @Failure      401  {object}  ErrorResponse "token expired"
// @Failure      404  {object}  ErrorResponse
// @Router       /api/verify-qr/{token} [get]
func (c *QRController) VerifyToken() {
	summary, err := c.qrService().Verify(c.Ctx.Request.Context(), c.Ctx.Param("token"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, VerifiedResponse{Verified: true, Resident: *summary})
}

// VerifyResident looks a resident up without a token
// @Summary      Verify a resident by ID
// @Tags         QR
// @Produce      json
// @Param        id path string true "Resident ID"
// @Success      200  {object}  VerifiedResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/verify-resident/{id} [get]
func (c *QRController) VerifyResident() {
	summary, err := c.qrService().VerifyResidentDirect(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, VerifiedResponse{Verified: true, Resident: *summary})
}

// GetQRCode renders a resident QR image
// @Summary      Render a QR code
// @Description  type=contact encodes tel:<pnumber>. type=token issues a token and encodes its verification URL.
// @Tags         QR
// @Produce      png
// @Param        id   path  string true  "Resident ID"
// @Param        type query string false "contact (default) or token"
// @Param        size query int    false "Image size in pixels, 64 to 1024"
// @Security     BearerAuth
// @Success      200
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/residents/{id}/qr-code [get]
func (c *QRController) GetQRCode() {
	size := 0
	if raw := c.Ctx.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "size must be an integer")
			return
		}
		size = parsed
	}

	ctx := c.Ctx.Request.Context()
	id := c.Ctx.Param("id")

	var (
		png []byte
		err error
	)
	switch c.Ctx.DefaultQuery("type", QRTypeContact) {
	case QRTypeContact:
		png, err = c.qrService().ContactQRCode(ctx, id, size)
	case QRTypeToken:
		png, err = c.qrService().TokenQRCode(ctx, id, size)
	default:
		response.FailWithMessage(c.Ctx, code.ErrValidation, "type must be contact or token")
		return
	}

	if err != nil {
		var domainErr *services.Error
		if errors.As(err, &domainErr) {
			response.Error(c.Ctx, err)
			return
		}
		logger.Error("render QR for resident %s: %v", id, err)
		response.Fail(c.Ctx, code.ErrQRRender)
		return
	}

	c.Ctx.Header("Cache-Control", "no-store")
	c.Ctx.Data(http.StatusOK, "image/png", png)
}

// HandleQRFunc returns a gin.HandlerFunc for the given QR method
func HandleQRFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewQRController(ctx, container)

		switch method {
		case "issueToken":
			controller.IssueToken()
		case "verifyToken":
			controller.VerifyToken()
		case "verifyResident":
			controller.VerifyResident()
		case "getQRCode":
			controller.GetQRCode()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}
