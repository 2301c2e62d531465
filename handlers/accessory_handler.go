package handlers

import (
	"net/http"
	"strconv"

	"autohub/models"
	"autohub/services"

	"github.com/gin-gonic/gin"
)

type AccessoryHandler struct {
	accessoryService services.AccessoryService
}

func NewAccessoryHandler(accessoryService services.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{accessoryService: accessoryService}
}

func (h *AccessoryHandler) ListAccessories(c *gin.Context) {
	var params models.CatalogListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessories, err := h.accessoryService.ListAccessories(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessories": accessories, "total": len(accessories)})
}

func (h *AccessoryHandler) GetAccessory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accessory ID"})
		return
	}

	accessory, err := h.accessoryService.GetAccessory(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, accessory)
}

func (h *AccessoryHandler) CreateAccessory(c *gin.Context) {
	var req models.CreateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessory, err := h.accessoryService.CreateAccessory(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, accessory)
}

func (h *AccessoryHandler) UpdateAccessory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accessory ID"})
		return
	}

	var req models.CreateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessory, err := h.accessoryService.UpdateAccessory(uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, accessory)
}

func (h *AccessoryHandler) DeleteAccessory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accessory ID"})
		return
	}

	if err := h.accessoryService.DeleteAccessory(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "accessory deleted"})
}
