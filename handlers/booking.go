package handlers

import (
	"errors"
	"net/http"

	bookingRepo "slotwise/database/repository/booking"
	"slotwise/services/booking"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking session flow over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// InitiateSession starts a booking session and returns the annotated
// candidate slots for the caller's timezone.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		Timezone string `json:"timezone" binding:"required"`
		UserName string `json:"userName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	session, err := h.Service.InitiateSession(c.Request.Context(), userID, input.UserName, input.Timezone)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidTimezone) {
			utils.JSONError(c, http.StatusBadRequest, "unrecognized timezone", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":  session.SessionID,
		"step":       session.Step,
		"candidates": session.Candidates,
	})
}

// UpdateSession advances or rewinds the booking session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input booking.UpdateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Request.Context(), sessionID, input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "invalid booking step", err.Error())
		case errors.Is(err, booking.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusConflict, "slot no longer available", "please pick another slot")
		case errors.Is(err, booking.ErrInvalidSessionType):
			utils.JSONError(c, http.StatusBadRequest, "unknown session type", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking session", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// ConfirmBooking finalizes the booking through the atomic commit protocol.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reservation, err := h.Service.ConfirmBooking(c.Request.Context(), input.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "session is not ready to confirm", err.Error())
		case errors.Is(err, bookingRepo.ErrBookingConflict), errors.Is(err, booking.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusConflict, "slot was booked by someone else", "please pick another slot")
		case errors.Is(err, bookingRepo.ErrPersistence):
			utils.JSONError(c, http.StatusServiceUnavailable, "booking could not be saved", "your booking was not confirmed, please try again")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "booking confirmation failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": reservation})
}

// CancelSession discards a booking session before commit.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetUserBookings returns the caller's reservation history.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.Service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}
