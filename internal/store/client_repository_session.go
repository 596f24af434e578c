package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(s)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("email", s.Email).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to build select query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&s.Email, &s.IDToken, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %w", ErrExecutingQuery, err)
	}

	return nil
}
