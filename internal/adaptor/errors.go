package adaptor

import (
	"net/http"
	"strings"

	"media-ratings/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service-layer error messages to HTTP status codes.
// Services return plain errors with recognizable prefixes instead of typed
// sentinels, so the dispatch here works on message content.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"),
		strings.Contains(msg, "ID format"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "denied"):
		utils.ResponseForbidden(w, msg)
	case strings.Contains(msg, "already exists"),
		strings.Contains(msg, "already reviewed"),
		strings.Contains(msg, "validation failed"),
		strings.Contains(msg, "invalid confirmation code"),
		strings.Contains(msg, "unknown category slug"),
		strings.Contains(msg, "unknown genre slug"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		log.Error("Service error", zap.String("action", action), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
