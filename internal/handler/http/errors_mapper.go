package http

import (
	"errors"
	"net/http"

	"github.com/jander15/BathroomPass-sub000/internal/app"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/internal/utils"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
)

var (
	errMalformedRequest = errors.New("malformed request")
	errUnknownAction    = errors.New("unknown action")
	errRefreshDenied    = errors.New("refresh denied")
)

// writeError answers err the way the real backend does. Credential problems
// carry the expiry markers; input problems become error envelopes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errMalformedRequest):
		_, _ = utils.WriteText(w, app.MsgMalformedRequest, http.StatusBadRequest)
	case errors.Is(err, errRefreshDenied):
		// never a marker: a failed refresh must not look like another expiry
		logger.FromRequest(r).Info().Err(err).Msg("refresh denied")
		writeEnvelopeError(w, app.MsgRefreshDenied)
	case errors.Is(err, service.ErrInvalidToken):
		_, _ = utils.WriteText(w, models.MarkerInvalidToken, http.StatusUnauthorized)
	case errors.Is(err, service.ErrTokenExpired):
		writeEnvelopeError(w, models.MarkerTokenExpired)
	case errors.Is(err, errUnknownAction):
		// the action name is caller text and may contain a marker
		logger.FromRequest(r).Info().Err(err).Msg("unknown action")
		writeEnvelopeError(w, app.MsgUnknownAction)
	case errors.Is(err, validators.ErrInvalidInput):
		writeEnvelopeError(w, err.Error())
	default:
		logger.FromRequest(r).Err(err).Msg("request failed")
		_, _ = utils.WriteText(w, app.MsgInternalError, http.StatusInternalServerError)
	}
}

func writeEnvelopeError(w http.ResponseWriter, msg string) {
	_, _ = utils.WriteJSON(w, models.Response{"result": models.ResultError, "error": msg}, http.StatusOK)
}
