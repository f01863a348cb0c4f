package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"silent-auction/internal/auctionerrors"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids recorded for item"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, auctionerrors.ErrBelowMinimum):
		return http.StatusConflict, "bid below minimum next bid"
	case errors.Is(err, auctionerrors.ErrBidSuperseded):
		return http.StatusConflict, "a higher bid was recorded first"
	case errors.Is(err, auctionerrors.ErrIdentityMissing):
		return http.StatusUnauthorized, "registration required"
	case errors.Is(err, auctionerrors.ErrInvalidIdentity):
		return http.StatusBadRequest, "invalid registration details"
	case errors.Is(err, auctionerrors.ErrProposalNotFound):
		return http.StatusNotFound, "bid proposal not found"
	case errors.Is(err, auctionerrors.ErrProposalNotPending):
		return http.StatusConflict, "bid proposal is not awaiting confirmation"
	case errors.Is(err, auctionerrors.ErrConfirmRequired):
		return http.StatusBadRequest, "explicit confirmation required"
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item fields"
	case errors.Is(err, auctionerrors.ErrRemoteUnavailable):
		return http.StatusBadGateway, "remote store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps the error, sends the envelope, and adds the registration
// redirect hint when the bidder has no identity on this device.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	if errors.Is(err, auctionerrors.ErrIdentityMissing) {
		c.JSON(status, gin.H{
			"status":      status,
			"message":     message,
			"error":       err.Error(),
			"redirect_to": "/",
		})
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}
	utils.Warn(handlerName+": request failed", map[string]any{"error": err.Error()})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
