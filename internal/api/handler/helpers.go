package handler

import (
	"encoding/json"
	"net/http"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/api/middleware"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/rs/zerolog"
)

const (
	maxBodyBytes = 1 << 20

	MsgInvalidPayload = "Invalid request payload"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, MsgInvalidPayload)
		return false
	}
	return true
}

// respondWithServiceError writes err's status and client message. Server-side
// failures are logged and replaced by a generic body.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		event := zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path)
		if email, ok := middleware.GetUserEmailFromContext(r.Context()); ok {
			event = event.Str("user_email", email)
		}
		event.Msg("request failed")
	}
	common.RespondWithError(w, status, common.ClientMessage(err))
}
