// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jander15/BathroomPass-sub000/models"
)

const (
	sessionsTable = "sessions"

	// sessionSlot is the primary key of the single stored session.
	sessionSlot = 1
)

var sessionColumns = []string{"email", "id_token", "updated_at"}

// sqlite takes "?" placeholders, which is squirrel's default format.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertSessionQuery(s models.Session) (string, []any, error) {
	return sqlite.
		Insert(sessionsTable).
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionSlot, s.Email, s.IDToken, s.UpdatedAt.UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"email = excluded.email, " +
			"id_token = excluded.id_token, " +
			"updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sqlite.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionSlot}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionSlot}).
		ToSql()
}
