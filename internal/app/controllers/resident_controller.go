package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/error/code"
	"resident-records-service/internal/error/response"
)

// InterfaceResidentController defines the resident controller interface
type InterfaceResidentController interface {
	GetResidents()
	GetResident()
	CreateResident()
	UpdateResident()
	DeleteResident()
	GetStats()
}

// ResidentController handles resident record requests
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController creates a new resident controller
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *ResidentController) residentService() services.InterfaceResidentService {
	return c.Container.GetService("resident").(services.InterfaceResidentService)
}

// GetResidents lists every resident
// @Summary      List residents
// @Description  Returns every resident record in insertion order
// @Tags         Resident
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Resident
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /residents [get]
func (c *ResidentController) GetResidents() {
	residents, err := c.residentService().GetAllResidents(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, residents)
}

// GetResident returns one resident
// @Summary      Get a resident
// @Tags         Resident
// @Produce      json
// @Param        id path string true "Resident ID"
// @Security     BearerAuth
// @Success      200  {object}  models.Resident
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /residents/{id} [get]
func (c *ResidentController) GetResident() {
	resident, err := c.residentService().GetResidentByID(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, resident)
}

// CreateResident adds a resident
// @Summary      Create a resident
// @Description  Every field is required. Numbers and booleans are accepted and stored as text.
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        request body models.Resident true "Resident"
// @Security     BearerAuth
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /residents [post]
func (c *ResidentController) CreateResident() {
	var resident models.Resident
	if err := c.Ctx.ShouldBindJSON(&resident); err != nil {
		response.BindError(c.Ctx)
		return
	}

	if err := c.residentService().CreateResident(c.Ctx.Request.Context(), &resident); err != nil {
		response.Error(c.Ctx, err)
		return
	}

	purgeResidentCache(c.Ctx.Request.Context(), c.Container)
	response.Message(c.Ctx, http.StatusCreated, "Resident saved successfully")
}

// UpdateResident overwrites the supplied fields of a resident
// @Summary      Update a resident
// @Description  Only non-empty fields are written. An id in the body is ignored.
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        id path string true "Resident ID"
// @Param        request body models.Resident true "Fields to change"
// @Security     BearerAuth
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /residents/{id} [put]
func (c *ResidentController) UpdateResident() {
	var partial models.Resident
	if err := c.Ctx.ShouldBindJSON(&partial); err != nil {
		response.BindError(c.Ctx)
		return
	}

	if _, err := c.residentService().UpdateResident(c.Ctx.Request.Context(), c.Ctx.Param("id"), &partial); err != nil {
		response.Error(c.Ctx, err)
		return
	}

	purgeResidentCache(c.Ctx.Request.Context(), c.Container)
	response.Message(c.Ctx, http.StatusOK, "Resident updated successfully")
}

// DeleteResident removes a resident
// @Summary      Delete a resident
// @Tags         Resident
// @Produce      json
// @Param        id path string true "Resident ID"
// @Security     BearerAuth
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /residents/{id} [delete]
func (c *ResidentController) DeleteResident() {
	if err := c.residentService().DeleteResident(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}

	purgeResidentCache(c.Ctx.Request.Context(), c.Container)
	response.Message(c.Ctx, http.StatusOK, "Resident deleted successfully")
}

// GetStats aggregates the resident records
// @Summary      Resident statistics
// @Description  Totals plus gender, employment, purok, age range and income range counts
// @Tags         Resident
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.ResidentStats
// @Failure      401  {object}  ErrorResponse
// @Router       /residents/stats [get]
func (c *ResidentController) GetStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.Summary(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, stats)
}

// HandleResidentFunc returns a gin.HandlerFunc for the given resident method
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "getResident":
			controller.GetResident()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		case "getStats":
			controller.GetStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}
