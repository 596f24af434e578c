package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jander15/BathroomPass-sub000/internal/utils"
	"github.com/jander15/BathroomPass-sub000/models"
)

const maxBodyBytes = 1 << 20

func (h *Handler) exec(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil || body == nil {
		writeError(w, r, fmt.Errorf("%w: %v", errMalformedRequest, err))
		return
	}

	action, _ := body[models.FieldAction].(string)

	var (
		resp models.Response
		err  error
	)
	switch action {
	case models.ActionVerifyGoogleToken:
		resp, err = h.verifyGoogleToken(ctx, body)
	case models.ActionRefreshToken:
		resp, err = h.refreshToken(ctx, body)
	default:
		resp, err = h.authenticated(ctx, action, body)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) verifyGoogleToken(ctx context.Context, body map[string]any) (models.Response, error) {
	var creds models.Credentials
	if err := decodeFields(body, &creds); err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}

	claims, err := utils.PeekIdentityClaims(token)
	if err != nil {
		return nil, err
	}

	return models.Response{
		"result":            models.ResultSuccess,
		models.FieldIDToken: token,
		models.FieldEmail:   claims.Email,
	}, nil
}

func (h *Handler) refreshToken(ctx context.Context, body map[string]any) (models.Response, error) {
	email, _ := body[models.FieldUserEmail].(string)
	token, _ := body[models.FieldIDToken].(string)

	fresh, err := h.services.AuthService.Refresh(ctx, email, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errRefreshDenied, err)
	}

	return models.Response{"result": models.ResultSuccess, models.FieldIDToken: fresh}, nil
}

// authenticated checks the stamped credential before dispatching action.
func (h *Handler) authenticated(ctx context.Context, action string, body map[string]any) (models.Response, error) {
	email, _ := body[models.FieldUserEmail].(string)
	token, _ := body[models.FieldIDToken].(string)

	claims, err := h.services.AuthService.Verify(ctx, email, token)
	if err != nil {
		return nil, err
	}

	serve, ok := h.actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownAction, action)
	}
	return serve(ctx, claims, body)
}

func (h *Handler) getReportData(ctx context.Context, _ models.IdentityClaims, body map[string]any) (models.Response, error) {
	var query models.ReportQuery
	if err := decodeFields(body, &query); err != nil {
		return nil, err
	}

	rows, err := h.services.RecordService.Report(ctx, query)
	if err != nil {
		return nil, err
	}
	return models.Response{"result": models.ResultSuccess, models.FieldData: rows}, nil
}

func (h *Handler) logPass(ctx context.Context, claims models.IdentityClaims, body map[string]any) (models.Response, error) {
	var pass models.BathroomPass
	if err := decodeFields(body, &pass); err != nil {
		return nil, err
	}

	if err := h.services.RecordService.LogPass(ctx, claims.Email, pass); err != nil {
		return nil, err
	}
	return models.Response{"result": models.ResultSuccess}, nil
}

func (h *Handler) getTutoringLog(ctx context.Context, _ models.IdentityClaims, body map[string]any) (models.Response, error) {
	var query models.TutoringQuery
	if err := decodeFields(body, &query); err != nil {
		return nil, err
	}

	rows, err := h.services.RecordService.TutoringLog(ctx, query)
	if err != nil {
		return nil, err
	}
	return models.Response{"result": models.ResultSuccess, models.FieldData: rows}, nil
}

func (h *Handler) logTutoring(ctx context.Context, _ models.IdentityClaims, body map[string]any) (models.Response, error) {
	var entry models.TutoringEntry
	if err := decodeFields(body, &entry); err != nil {
		return nil, err
	}

	if err := h.services.RecordService.LogTutoring(ctx, entry); err != nil {
		return nil, err
	}
	return models.Response{"result": models.ResultSuccess}, nil
}

// decodeFields copies the action fields of body into dst.
func decodeFields(body map[string]any, dst any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedRequest, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", errMalformedRequest, err)
	}
	return nil
}

