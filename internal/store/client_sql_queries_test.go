package store

import (
	"strings"
	"testing"
	"time"

	"github.com/jander15/BathroomPass-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertSessionQuery(t *testing.T) {
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.FixedZone("EEST", 3*60*60))

	query, args, err := buildUpsertSessionQuery(models.Session{Email: "a@b.example", IDToken: "T1", UpdatedAt: at})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into sessions")
	assert.Contains(t, q, "on conflict (id) do update")
	assert.Contains(t, q, "id_token = excluded.id_token")
	assert.NotContains(t, query, "$1", "sqlite uses ? placeholders")

	require.Len(t, args, 4)
	assert.Equal(t, sessionSlot, args[0])
	assert.Equal(t, "a@b.example", args[1])
	assert.Equal(t, "T1", args[2])
	assert.Equal(t, at.UTC(), args[3], "timestamps are stored in UTC")
}

func Test_buildSelectSessionQuery(t *testing.T) {
	query, args, err := buildSelectSessionQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT email, id_token, updated_at FROM sessions WHERE id = ?", query)
	assert.Equal(t, []any{sessionSlot}, args)
}

func Test_buildDeleteSessionQuery(t *testing.T) {
	query, args, err := buildDeleteSessionQuery()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM sessions WHERE id = ?", query)
	assert.Equal(t, []any{sessionSlot}, args)
}
