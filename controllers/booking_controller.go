package controllers

import (
	"net/http"
	"strconv"

	"room-booking-backend/services"
	"room-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Engine *services.AllocationEngine
	Ledger *services.BookingLedger
}

func NewBookingController(engine *services.AllocationEngine, ledger *services.BookingLedger) *BookingController {
	return &BookingController{Engine: engine, Ledger: ledger}
}

type createBookingRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Adults   int    `json:"adults" binding:"required,min=1"`
	Children int    `json:"children" binding:"min=0"`
}

// CreateBooking allocates a unit of the room type for the requested
// window and commits the booking.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Engine.Allocate(id, req.CheckIn, req.CheckOut, req.UserName, req.Email, req.Adults, req.Children)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.Engine.Release(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking_id": id, "status": "cancelled"})
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Ledger.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	booking, err := bc.Ledger.FindByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) GetBookingsByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email query parameter required")
		return
	}

	bookings, err := bc.Ledger.FindByEmail(email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
