package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestMapErrorNilStaysNil(t *testing.T) {
	t.Parallel()

	// The returned interface must be nil itself, not a typed nil pointer,
	// so `if err := MapError(op()); err != nil` works as a tail call.
	err := MapError(nil)
	require.NoError(t, err)
	require.Nil(t, err)
}

func TestMapErrorPassesThroughDomainError(t *testing.T) {
	t.Parallel()

	original := NewForbidden("nope")
	mapped := MapError(original)

	var domainErr *DomainError
	require.ErrorAs(t, mapped, &domainErr)
	require.Equal(t, "FORBIDDEN", domainErr.Code)
	require.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	t.Parallel()

	domainErr := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	domainErr := ToDomainError(cause)
	require.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	require.ErrorIs(t, domainErr, cause)
}
