// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/mock"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestActionSvc(t *testing.T) (ClientActionService, *mock.MockBackendAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)

	return NewClientActionService(mockAdapter, validators.NewRequestValidator(), logger.Nop()), mockAdapter
}

// expectSend asserts the outgoing action and fields and answers with resp/err.
func expectSend(t *testing.T, m *mock.MockBackendAdapter, action string, fields map[string]any, resp models.Response, err error) {
	m.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.Request) (models.Response, error) {
			assert.Equal(t, action, req.Action())
			for k, v := range fields {
				assert.Equal(t, v, req[k], "field %s", k)
			}
			return resp, err
		})
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestClientActionService_Run_ReturnsEnvelopeAsIs(t *testing.T) {
	svc, m := newTestActionSvc(t)

	domainErr := models.Response{"result": "error", "error": "Class not found"}
	expectSend(t, m, "customAction", map[string]any{"k": "v"}, domainErr, nil)

	resp, err := svc.Run(context.Background(), " customAction ", map[string]any{"k": "v"})

	require.NoError(t, err)
	assert.Equal(t, domainErr, resp)
}

func TestClientActionService_Run_EmptyAction(t *testing.T) {
	svc, _ := newTestActionSvc(t)

	_, err := svc.Run(context.Background(), "  ", nil)

	assert.ErrorIs(t, err, ErrEmptyAction)
}

func TestClientActionService_Run_MapsCredentialErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantSignIn bool
	}{
		{name: "not authenticated", err: adapter.ErrNotAuthenticated, wantSignIn: true},
		{name: "expired", err: fmt.Errorf("%w: %w", adapter.ErrSessionExpired, adapter.ErrRefreshRejected), wantSignIn: true},
		{name: "http error", err: &adapter.HTTPError{Status: 500, Body: "boom"}},
		{name: "malformed", err: adapter.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestActionSvc(t)
			m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			_, err := svc.Run(context.Background(), "x", nil)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.wantSignIn, errors.Is(err, ErrSignInRequired))
		})
	}
}

// ── typed helpers ────────────────────────────────────────────────────────────

func TestClientActionService_GetReportData(t *testing.T) {
	svc, m := newTestActionSvc(t)

	expectSend(t, m, models.ActionGetReportData, map[string]any{"class": "5A"},
		models.Response{"result": "success", "data": []any{
			map[string]any{"student": "Ada", "out": "09:01", "in": "09:05"},
			"ignored",
		}}, nil)

	rows, err := svc.GetReportData(context.Background(), models.ReportQuery{Class: "5A"})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada", rows[0]["student"])
}

func TestClientActionService_GetReportData_DomainError(t *testing.T) {
	svc, m := newTestActionSvc(t)

	expectSend(t, m, models.ActionGetReportData, nil,
		models.Response{"result": "error", "error": "Class not found"}, nil)

	_, err := svc.GetReportData(context.Background(), models.ReportQuery{Class: "9Z"})

	assert.ErrorIs(t, err, ErrActionFailed)
	assert.Contains(t, err.Error(), "Class not found")
}

func TestClientActionService_GetReportData_Invalid(t *testing.T) {
	svc, _ := newTestActionSvc(t)

	_, err := svc.GetReportData(context.Background(), models.ReportQuery{})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestClientActionService_LogPass(t *testing.T) {
	svc, m := newTestActionSvc(t)
	at := time.Date(2026, 9, 1, 9, 1, 0, 0, time.UTC)

	expectSend(t, m, models.ActionLogPass,
		map[string]any{"student": "Ada", "class": "5A", "direction": "out", "at": "2026-09-01T09:01:00Z"},
		models.Response{"result": "success"}, nil)

	err := svc.LogPass(context.Background(), models.BathroomPass{Student: "Ada", Class: "5A", Direction: models.PassOut, At: at})

	assert.NoError(t, err)
}

func TestClientActionService_LogPass_Invalid(t *testing.T) {
	svc, _ := newTestActionSvc(t)

	err := svc.LogPass(context.Background(), models.BathroomPass{Student: "Ada", Class: "5A", Direction: "sideways"})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestClientActionService_LogPass_UnexpectedResult(t *testing.T) {
	svc, m := newTestActionSvc(t)

	expectSend(t, m, models.ActionLogPass, nil, models.Response{"status": "ok"}, nil)

	err := svc.LogPass(context.Background(), models.BathroomPass{Student: "Ada", Class: "5A", Direction: models.PassIn})

	assert.ErrorIs(t, err, ErrActionFailed)
	assert.Contains(t, err.Error(), "unexpected result")
}

func TestClientActionService_GetTutoringLog_SignInRequired(t *testing.T) {
	svc, m := newTestActionSvc(t)

	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrSessionExpired)

	_, err := svc.GetTutoringLog(context.Background(), models.TutoringQuery{Teacher: "Ms. Lovelace"})

	assert.ErrorIs(t, err, ErrSignInRequired)
}

func TestClientActionService_GetTutoringLog(t *testing.T) {
	svc, m := newTestActionSvc(t)

	expectSend(t, m, models.ActionGetTutoringLog, map[string]any{"teacher": "Ms. Lovelace"},
		models.Response{"result": "success", "data": []any{map[string]any{"student": "Ada", "minutes": float64(30)}}}, nil)

	rows, err := svc.GetTutoringLog(context.Background(), models.TutoringQuery{Teacher: "Ms. Lovelace"})

	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"student": "Ada", "minutes": float64(30)}}, rows)
}
