package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"autohub/helper"
	"autohub/models"
	"autohub/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

var httpHelper = &helper.HTTPHelper{}

// identityFromContext reads the verified identity resolved by the auth
// middleware. Anonymous requests fall back to the ordinary-user role.
func identityFromContext(c *gin.Context) services.Identity {
	identity := services.Identity{Role: models.RoleUser}

	if v, exists := c.Get("user_id"); exists {
		identity.UserID = v.(uint)
	}
	if v, exists := c.Get("username"); exists {
		identity.Username = v.(string)
	}
	if v, exists := c.Get("email"); exists {
		identity.Email = v.(string)
	}
	if v, exists := c.Get("role"); exists {
		identity.Role = v.(models.UserRole)
	}

	return identity
}

func respondError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		httpHelper.SendValidationError(c, validationErrors)
		return
	}

	c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
}

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var params models.VehicleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(params, identityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "total": len(vehicles)})
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(uint(id), identityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(req, identityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	var req models.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) ChangeStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	var req models.UpdateVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.ChangeStatus(uint(id), req.Status, identityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	if err := h.vehicleService.DeleteVehicle(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
