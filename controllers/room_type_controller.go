package controllers

import (
	"net/http"
	"strconv"

	"room-booking-backend/services"
	"room-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	Catalog *services.RoomTypeService
	Engine  *services.AllocationEngine
}

func NewRoomTypeController(catalog *services.RoomTypeService, engine *services.AllocationEngine) *RoomTypeController {
	return &RoomTypeController{Catalog: catalog, Engine: engine}
}

type availabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
	Adults   int    `form:"adults,default=1" binding:"min=1"`
	Children int    `form:"children" binding:"min=0"`
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rc.Catalog.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rc *RoomTypeController) GetRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rt, err := rc.Catalog.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// GetAvailability returns the room type with room_numbers narrowed to
// the units free for the requested window; the list may be empty.
func (rc *RoomTypeController) GetAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var q availabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := rc.Engine.AvailableView(id, q.CheckIn, q.CheckOut, q.Adults, q.Children)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}
