package service

import (
	"context"
	"sync"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
)

type passRecord struct {
	models.BathroomPass
	LoggedBy string
}

// recordService keeps records in memory; they are lost when the stub stops.
type recordService struct {
	mu       sync.RWMutex
	passes   []passRecord
	tutoring []models.TutoringEntry
	now      func() time.Time

	validator validators.Validator
	logger    *logger.Logger
}

func NewRecordService(validator validators.Validator, logger *logger.Logger) RecordService {
	return &recordService{
		now:       time.Now,
		validator: validator,
		logger:    logger,
	}
}

func (s *recordService) LogPass(ctx context.Context, loggedBy string, pass models.BathroomPass) error {
	if err := s.validator.Validate(ctx, pass); err != nil {
		return err
	}
	if pass.At.IsZero() {
		pass.At = s.now()
	}

	s.mu.Lock()
	s.passes = append(s.passes, passRecord{BathroomPass: pass, LoggedBy: loggedBy})
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("class", pass.Class).
		Str("direction", string(pass.Direction)).
		Msg("pass logged")
	return nil
}

func (s *recordService) Report(ctx context.Context, query models.ReportQuery) ([]map[string]any, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]map[string]any, 0)
	for _, p := range s.passes {
		if p.Class != query.Class {
			continue
		}
		rows = append(rows, map[string]any{
			"student":   p.Student,
			"class":     p.Class,
			"direction": string(p.Direction),
			"at":        p.At.UTC().Format(time.RFC3339),
			"loggedBy":  p.LoggedBy,
		})
	}
	return rows, nil
}

func (s *recordService) LogTutoring(ctx context.Context, entry models.TutoringEntry) error {
	if err := s.validator.Validate(ctx, entry); err != nil {
		return err
	}
	if entry.At.IsZero() {
		entry.At = s.now()
	}

	s.mu.Lock()
	s.tutoring = append(s.tutoring, entry)
	s.mu.Unlock()

	return nil
}

func (s *recordService) TutoringLog(ctx context.Context, query models.TutoringQuery) ([]map[string]any, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]map[string]any, 0)
	for _, e := range s.tutoring {
		if e.Teacher != query.Teacher {
			continue
		}
		rows = append(rows, map[string]any{
			"teacher": e.Teacher,
			"student": e.Student,
			"minutes": e.Minutes,
			"at":      e.At.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}
