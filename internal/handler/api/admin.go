package api

import (
	"net/http"

	reqdto "carrental-storefront/internal/handler/dto/request"
	resdto "carrental-storefront/internal/handler/dto/response"
	"carrental-storefront/internal/handler/httperr"
	"carrental-storefront/internal/handler/validation"
	"carrental-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminCarHandler struct {
	cmds commands.AdminCarCommands
}

func NewAdminCarHandler(cmds commands.AdminCarCommands) *AdminCarHandler {
	return &AdminCarHandler{cmds: cmds}
}

// @Summary Create car
// @Description Add a car to the fleet
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCarRequest true "Car"
// @Success 201 {object} resdto.AdminCarResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/admin/cars [post]
func (h *AdminCarHandler) Create(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Details(err))
		return
	}
	created, err := h.cmds.CreateCar(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCarAdmin(created))
}

// @Summary Update car
// @Description Patch car fields and availability; softLock=true holds the car for the configured duration
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Fields to change"
// @Success 200 {object} resdto.AdminCarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/admin/cars/{id} [patch]
func (h *AdminCarHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Details(err))
		return
	}
	updated, err := h.cmds.UpdateCar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarAdmin(updated))
}
