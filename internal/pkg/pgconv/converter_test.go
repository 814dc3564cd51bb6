//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"bookmyvenue/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDPtr(t *testing.T) {
	assert.Nil(t, UUIDPtrFromPgtype(pgtype.UUID{}))
	assert.False(t, UUIDPtrToPgtype(nil).Valid)

	id := uuid.New()
	pg := UUIDPtrToPgtype(&id)
	require.True(t, pg.Valid)
	back := UUIDPtrFromPgtype(pg)
	require.NotNil(t, back)
	assert.Equal(t, id, *back)
}

func TestText(t *testing.T) {
	assert.False(t, StringToPgtype("").Valid)
	assert.Equal(t, pgtype.Text{String: "Pune", Valid: true}, StringToPgtype("Pune"))
	assert.Equal(t, "", StringFromPgtype(pgtype.Text{String: "stale", Valid: false}))
	assert.Equal(t, "Pune", StringFromPgtype(pgtype.Text{String: "Pune", Valid: true}))
}

func TestTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	pg := TimeToPgtype(now)
	assert.True(t, pg.Valid)
	assert.Equal(t, now, TimeFromPgtype(pg))
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0.00"},
		{"50000", "50000.00"},
		{"1499.5", "1499.50"},
		{"0.005", "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := DecimalFromText(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, DecimalToText(d))
		})
	}

	_, err := DecimalFromText("12,50")
	require.Error(t, err)
	assert.True(t, errs.Is(err, ErrInvalidNumericValue))

	assert.Equal(t, "-3.10", DecimalToText(decimal.RequireFromString("-3.1")))
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, NonNilUUIDs(nil))
	assert.Empty(t, NonNilUUIDs(nil))
	ids := []uuid.UUID{uuid.New()}
	assert.Equal(t, ids, NonNilUUIDs(ids))

	assert.NotNil(t, NonNilStrings(nil))
	assert.Equal(t, []string{"wedding"}, NonNilStrings([]string{"wedding"}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(sql.ErrNoRows, "get user")))
	assert.False(t, IsNoRows(errs.New("timeout")))
	assert.False(t, IsNoRows(nil))
}
