package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"kadima-pos/models"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, models.ErrCartNotFound):
		return http.StatusNotFound, "Cart not found"
	case errors.Is(err, models.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, models.ErrEmptyCart):
		return http.StatusConflict, "Cart is empty"
	case errors.Is(err, models.ErrInvalidStatusTransition):
		return http.StatusConflict, "Invalid payment status transition"
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the error envelope. Internal errors are recorded on the
// context for the request logger and not echoed to the client.
func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	resp := models.ErrorResponse{Success: false, Message: message}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	} else {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
