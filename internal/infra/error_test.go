//go:build unit

package infra

import (
	"testing"

	"bookmyvenue/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		force []RepositoryErrorKind
		want  RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: KindCheckViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: KindDBFailure},
		{name: "plain error", err: errs.New("conn reset"), want: KindDBFailure},
		{name: "nil error", err: nil, want: KindDBFailure},
		{name: "explicit kind wins", err: errs.New("ownership"), force: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("load venue", tt.err, tt.force...)

			assert.True(t, IsKind(err, tt.want))
			assert.Contains(t, err.Error(), "load venue")
			if tt.err != nil {
				assert.True(t, errs.Is(err, tt.err))
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	wrapped := errs.Wrap(WrapRepoErr("insert booking", &pgconn.PgError{Code: "23505"}), "create booking")

	assert.True(t, IsKind(wrapped, KindDuplicateKey))
	assert.False(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(errs.New("other"), KindDuplicateKey))
}
