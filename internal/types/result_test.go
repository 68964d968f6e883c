package types

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThen_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	r := Then(Fail[int](StagePrompting, errors.New("boom")), func(v int) Result[string] {
		calls++
		return Ok("never")
	})

	require.False(t, r.OK())
	assert.Equal(t, 0, calls)
	assert.Equal(t, StagePrompting, r.Failure().Stage)
}

func TestThen_ChainsValues(t *testing.T) {
	r := Then(Ok(2), func(v int) Result[int] { return Ok(v * 21) })

	require.True(t, r.OK())
	assert.Equal(t, 42, r.Value())
}

func TestOrElse(t *testing.T) {
	v, f := OrElse(Ok("live"), func(*Failure) string { return "fallback" })
	assert.Equal(t, "live", v)
	assert.Nil(t, f)

	parseErr := errors.Wrap(ErrParseFailure, "no days")
	v, f = OrElse(Fail[string](StageExtracting, parseErr), func(f *Failure) string {
		return "fallback:" + string(f.Stage)
	})
	assert.Equal(t, "fallback:EXTRACTING", v)
	require.NotNil(t, f)
	assert.Equal(t, ReasonParseFailure, f.Reason())
}

func TestAttempt(t *testing.T) {
	r := Attempt(StageGenerating, func() (string, error) { return "", context.DeadlineExceeded })

	require.False(t, r.OK())
	assert.Equal(t, ReasonUpstreamUnavailable, r.Failure().Reason())
	assert.ErrorIs(t, r.Failure(), context.DeadlineExceeded)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.Wrap(ErrValidationGap, "destination"), ReasonValidationGap},
		{errors.Wrapf(ErrParseFailure, "raw %q", "x"), ReasonParseFailure},
		{errors.New("dial tcp: refused"), ReasonUpstreamUnavailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.err), tt.err.Error())
	}
}
