package serrors_test

import (
	"errors"
	"fmt"
	"leavebot/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")

	e1 := serrors.With(serrors.ErrBadRequest, "field %s is required", "userId")
	require.Equal(t, "field userId is required", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "pushing message")
	require.Equal(t, "pushing message: connection reset", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrRateLimited)
	require.Equal(t, "RATE_LIMITED", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "replying")

	require.ErrorIs(t, e, serrors.ErrUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest)
}

func TestKindOf(t *testing.T) {
	custom := serrors.NewKind("CUSTOM")

	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "semantic error", err: serrors.With(serrors.ErrBadRequest, "missing fields"), want: serrors.ErrBadRequest},
		{name: "wrapped semantic error", err: fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrRateLimited)), want: serrors.ErrRateLimited},
		{name: "bare kind", err: serrors.ErrNotFound, want: serrors.ErrNotFound},
		{name: "custom kind", err: serrors.With(custom, "x"), want: custom},
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "missing fields")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "missing fields", e.Message())
	require.Equal(t, base, e.Unwrap())
	require.Equal(t, "missing fields", serrors.MessageOf(fmt.Errorf("submit: %w", e)))
	require.Empty(t, serrors.MessageOf(base))
}
