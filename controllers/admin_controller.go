package controllers

import (
	"net/http"

	"room-booking-backend/models"
	"room-booking-backend/services"
	"room-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController owns the catalog write path. It sits behind the
// AdminAuth middleware.
type AdminController struct {
	Catalog *services.RoomTypeService
}

func NewAdminController(catalog *services.RoomTypeService) *AdminController {
	return &AdminController{Catalog: catalog}
}

func (ac *AdminController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := ac.Catalog.Create(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (ac *AdminController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	rt.ID = id

	if err := ac.Catalog.Update(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ac *AdminController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ac.Catalog.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
