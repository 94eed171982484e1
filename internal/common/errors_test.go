package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError("STORE_WRITE", "cannot persist report", cause)

	assert.Equal(t, "STORE_WRITE: cannot persist report: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))

	t.Run("without cause", func(t *testing.T) {
		err := NewAppError("CONFIG", "rubric missing", nil)
		assert.Equal(t, "CONFIG: rubric missing", err.Error())
	})
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(ErrRateLimited))
	assert.True(t, IsRateLimited(fmt.Errorf("chat: %w", ErrRateLimited)))
	assert.False(t, IsRateLimited(errors.New("boom")))
	assert.False(t, IsRateLimited(nil))
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, AuditIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithAuditID(ctx, "audit-42")
	ctx = WithRequestID(ctx, "req-7")
	assert.Equal(t, "audit-42", AuditIDFromContext(ctx))
	assert.Equal(t, "req-7", RequestIDFromContext(ctx))
}
