package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/error/code"
	"resident-records-service/internal/error/response"
)

// ScanLogRequest is the body of a scan report. Every field is optional.
type ScanLogRequest struct {
	ResidentID string `json:"residentId" example:"R1"`
	Purpose    string `json:"purpose" example:"Clinic visit"`
	Location   string `json:"location" example:"Barangay hall"`
}

// ScanController records QR scans
type ScanController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewScanController creates a new scan controller
func NewScanController(ctx *gin.Context, container *container.ServiceContainer) *ScanController {
	return &ScanController{
		Ctx:       ctx,
		Container: container,
	}
}

// LogScan appends a scan log entry
// @Summary      Log a QR scan
// @Tags         QR
// @Accept       json
// @Produce      json
// @Param        request body ScanLogRequest false "Scan details"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/log-scan [post]
func (c *ScanController) LogScan() {
	var req ScanLogRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BindError(c.Ctx)
		return
	}

	scanLogService := c.Container.GetService("scan_log").(services.InterfaceScanLogService)
	if _, err := scanLogService.Record(c.Ctx.Request.Context(), req.ResidentID, req.Purpose, req.Location); err != nil {
		response.Error(c.Ctx, err)
		return
	}

	response.Message(c.Ctx, http.StatusCreated, "Scan logged successfully")
}

// HandleScanFunc returns a gin.HandlerFunc for the given scan method
func HandleScanFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewScanController(ctx, container)

		switch method {
		case "logScan":
			controller.LogScan()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}
