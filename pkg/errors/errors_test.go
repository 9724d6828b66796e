package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/clipnote/clipnote/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "video",
			ID:       "dQw4w9WgXcQ",
		}
		assert.Equal(t, "video with ID dQw4w9WgXcQ not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("channel", "UC123")
		assert.Equal(t, "channel with ID UC123 not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("page", "abc")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "video_ids",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field video_ids: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Service:    "notion",
			StatusCode: 429,
			Message:    "rate limit exceeded",
		}
		assert.Contains(t, err.Error(), "notion")
		assert.Contains(t, err.Error(), "429")
		assert.True(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		err := pkgerrors.NewAPIError("youtube", 503, "backend down")
		assert.True(t, pkgerrors.IsServiceUnavailable(err))
		assert.False(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection timeout")
		err := &pkgerrors.APIError{
			Service: "youtube",
			Message: "request failed",
			Err:     baseErr,
		}
		assert.Contains(t, err.Error(), "youtube")
		assert.Equal(t, baseErr, err.Unwrap())
	})
}

func TestSyncError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.NewSyncError("vid1", "upsert", base)
	assert.Contains(t, err.Error(), "vid1")
	assert.Contains(t, err.Error(), "upsert")
	assert.Equal(t, base, err.Unwrap())
}

func TestParseError(t *testing.T) {
	err := pkgerrors.NewParseError("duration", "not-a-duration", "bad format", nil)
	assert.Contains(t, err.Error(), "duration")
	assert.Contains(t, err.Error(), "not-a-duration")
}

func TestWrapHelpers(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapValidation("f", nil))
	assert.Nil(t, pkgerrors.WrapParse("json", "", nil))
	assert.Nil(t, pkgerrors.WrapAPI("notion", 500, nil))

	base := errors.New("bad")
	wrapped := pkgerrors.WrapAPI("notion", 500, base)
	assert.True(t, pkgerrors.IsServiceUnavailable(wrapped))
}
