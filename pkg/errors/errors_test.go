// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, hints and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_not_found",
			code:    errors.ErrConfigNotFound,
			message: "Configuration file not found",
			wantStr: "[CONFIG_NOT_FOUND] Configuration file not found",
		},
		{
			name:    "trigger_no_match",
			code:    errors.ErrTriggerNoMatch,
			message: "cannot determine command",
			wantStr: "[TRIGGER_NO_MATCH] cannot determine command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrVarCapture, "found %d captures", 3)
	assert.Equal(t, "found 3 captures", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPipeCreate, "cannot create pipe")
		require.NotNil(t, err)
		assert.Equal(t, errors.ErrPipeCreate, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[PIPE_CREATE] cannot create pipe: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %d", 1))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrConfigParse, "bad json"))
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfigParse, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConfigLoad, "")))
}

func TestHints(t *testing.T) {
	t.Run("outer_hint", func(t *testing.T) {
		err := errors.New(errors.ErrTriggerNoMatch, "no match").WithHint("add a rule")
		assert.Equal(t, "add a rule", errors.GetHint(err))
	})

	t.Run("inner_hint", func(t *testing.T) {
		inner := errors.New(errors.ErrVarCapture, "found 0 captures").WithHint("use one capture group")
		outer := errors.Wrap(inner, errors.ErrConfigInvalid, "variable failed")
		assert.Equal(t, "use one capture group", errors.GetHint(outer))
	})

	t.Run("no_hint", func(t *testing.T) {
		assert.Empty(t, errors.GetHint(stderrors.New("plain")))
		assert.Empty(t, errors.GetHint(nil))
	})
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrPipeOpen, errors.GetErrorCode(errors.New(errors.ErrPipeOpen, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.True(t, errors.IsErrorCode(fmt.Errorf("ctx: %w", errors.New(errors.ErrPipeOpen, "x")), errors.ErrPipeOpen))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "no match", errors.GetMessage(errors.New(errors.ErrTriggerNoMatch, "no match")))
	assert.Equal(t, "cannot open: boom", errors.GetMessage(errors.Wrap(stderrors.New("boom"), errors.ErrConfigLoad, "cannot open")))
	assert.Equal(t, "plain", errors.GetMessage(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPipeOpen, "cannot open").WithDetail("path", "/tmp/.testpipe")
	assert.Equal(t, "/tmp/.testpipe", err.Details["path"])
}
