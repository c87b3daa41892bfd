package controllers

import (
	"errors"
	"log"
	"net/http"

	"room-booking-backend/services"
	"room-booking-backend/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

func serviceErrorStatus(err error) int {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return http.StatusConflict
	}

	switch {
	case services.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoomTypeExists),
		errors.Is(err, services.ErrAlreadyCancelled),
		errors.Is(err, services.ErrNoUnitsAvailable),
		errors.Is(err, services.ErrAllocationRaceExhausted),
		errors.Is(err, services.ErrUnitConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps service sentinels to HTTP statuses. The
// sentinel text is the machine-readable reason code; storage failures
// are logged and masked.
func respondServiceError(c *gin.Context, err error) {
	status := serviceErrorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "internal error"
	}
	utils.JSONError(c, status, message)
}
