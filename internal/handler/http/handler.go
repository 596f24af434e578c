package http

import (
	"context"

	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/models"
)

// actionFunc serves one authenticated action.
type actionFunc func(ctx context.Context, claims models.IdentityClaims, body map[string]any) (models.Response, error)

type Handler struct {
	services       *service.Services
	actions        map[string]actionFunc
	allowedOrigins []string
	buildInfo      models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, allowedOrigins []string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		allowedOrigins: allowedOrigins,
		buildInfo:      buildInfo,
		logger:         logger,
	}
	h.actions = map[string]actionFunc{
		models.ActionGetReportData:  h.getReportData,
		models.ActionLogPass:        h.logPass,
		models.ActionGetTutoringLog: h.getTutoringLog,
		models.ActionLogTutoring:    h.logTutoring,
	}

	logger.Info().Msg("http handler created")
	return h
}
