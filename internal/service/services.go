package service

import (
	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
)

// Services groups the stub backend services.
type Services struct {
	AuthService   AuthService
	RecordService RecordService
}

func NewServices(cfg *config.StubConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	validator := validators.NewRequestValidator()

	authService, err := NewAuthService(cfg, validator, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:   authService,
		RecordService: NewRecordService(validator, logger),
	}, nil
}
