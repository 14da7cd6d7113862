package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	err := New("SOME_CODE", "something failed", http.StatusBadRequest)
	require.Equal(t, "something failed", err.Error())

	wrapped := err.WithInternal(stderrors.New("db down"))
	require.Equal(t, "something failed: db down", wrapped.Error())
	require.ErrorIs(t, wrapped, wrapped.Internal)
}

func TestWrapPassesAppErrorsThrough(t *testing.T) {
	orig := New("ORG_NOT_FOUND", "Organization not found", http.StatusNotFound)

	wrapped := Wrap(orig, "Error fetching organization")
	require.Equal(t, orig, wrapped)
	require.Equal(t, http.StatusNotFound, wrapped.StatusCode)

	// Even through fmt wrapping the original semantics survive.
	chained := fmt.Errorf("service: %w", orig)
	wrapped = Wrap(chained, "Error fetching organization")
	require.Equal(t, "Organization not found", wrapped.Message)
	require.Equal(t, http.StatusNotFound, wrapped.StatusCode)
}

func TestWrapUnexpectedError(t *testing.T) {
	cause := stderrors.New("disk full")

	wrapped := Wrap(cause, "Error creating organization")
	require.Equal(t, http.StatusInternalServerError, wrapped.StatusCode)
	require.Equal(t, "Error creating organization", wrapped.Message)
	require.ErrorIs(t, wrapped, cause)
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	appErr := NewBadRequest("bad input")
	require.Equal(t, appErr, FromError(appErr))
	require.Equal(t, http.StatusBadRequest, FromError(appErr).StatusCode)

	generic := FromError(stderrors.New("boom"))
	require.Equal(t, ErrInternalServer.Code, generic.Code)
	require.EqualError(t, generic.Internal, "boom")
}

func TestConstructors(t *testing.T) {
	nf := NewNotFound("User not found")
	require.Equal(t, http.StatusNotFound, nf.StatusCode)
	require.Equal(t, "User not found", nf.Message)

	br := NewBadRequest("Invalid status value")
	require.Equal(t, http.StatusBadRequest, br.StatusCode)
	require.Equal(t, "Invalid status value", br.Message)
}
