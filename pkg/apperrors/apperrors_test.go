package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("duplicate key")

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "plain", err: errors.New("boom"), expected: KindInternal},
		{name: "validation", err: Validation("bad"), expected: KindValidation},
		{name: "conflict", err: Conflict("dup"), expected: KindConflict},
		{name: "notfound", err: NotFound("missing"), expected: KindNotFound},
		{name: "unauthorized", err: Unauthorized("no"), expected: KindUnauthorized},
		{name: "ratelimited", err: RateLimited("slow"), expected: KindRateLimited},
		{name: "wrapped", err: fmt.Errorf("outer: %w", Conflict("dup")), expected: KindConflict},
		{name: "withcause", err: Wrap(KindConflict, "dup", cause), expected: KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
			assert.Equal(t, tt.expected != KindInternal, IsExpected(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(KindConflict, "Already voted", cause)

	assert.Equal(t, "Already voted", err.Error())
	assert.ErrorIs(t, err, cause)
}
