package service

import (
	"context"
	"strings"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
)

type clientActionService struct {
	adapter   adapter.BackendAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientActionService(backend adapter.BackendAdapter, validator validators.Validator, logger *logger.Logger) ClientActionService {
	return &clientActionService{
		adapter:   backend,
		validator: validator,
		logger:    logger,
	}
}

func (s *clientActionService) Run(ctx context.Context, action string, fields map[string]any) (models.Response, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, ErrEmptyAction
	}

	resp, err := s.adapter.Send(ctx, models.NewRequest(action, fields))
	if err != nil {
		s.logger.Err(err).Str("action", action).Msg("action failed")
		return nil, mapAdapterError(err)
	}

	return resp, nil
}

func (s *clientActionService) GetReportData(ctx context.Context, query models.ReportQuery) ([]map[string]any, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, err
	}

	resp, err := s.Run(ctx, models.ActionGetReportData, query.Fields())
	if err != nil {
		return nil, err
	}
	if err = envelopeError(models.ActionGetReportData, resp); err != nil {
		return nil, err
	}

	return resp.Rows(models.FieldData), nil
}

func (s *clientActionService) LogPass(ctx context.Context, pass models.BathroomPass) error {
	if err := s.validator.Validate(ctx, pass); err != nil {
		return err
	}

	resp, err := s.Run(ctx, models.ActionLogPass, pass.Fields())
	if err != nil {
		return err
	}

	return envelopeError(models.ActionLogPass, resp)
}

func (s *clientActionService) GetTutoringLog(ctx context.Context, query models.TutoringQuery) ([]map[string]any, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, err
	}

	resp, err := s.Run(ctx, models.ActionGetTutoringLog, query.Fields())
	if err != nil {
		return nil, err
	}
	if err = envelopeError(models.ActionGetTutoringLog, resp); err != nil {
		return nil, err
	}

	return resp.Rows(models.FieldData), nil
}
