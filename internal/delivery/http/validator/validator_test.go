package validator

import (
	"strings"
	"testing"

	domainerrors "facelock/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	UserID    string   `form:"user_id" validate:"required,max=255,userid"`
	Email     string   `form:"email" validate:"omitempty,email"`
	Threshold *float64 `form:"similarity_threshold" validate:"omitempty,gte=0,lte=100"`
}

func TestValidate(t *testing.T) {
	v := New()
	high := 100.5
	ok := 42.0

	require.NoError(t, v.Validate(&form{UserID: "alice.doe:01", Email: "a@example.com", Threshold: &ok}))
	require.NoError(t, v.Validate(&form{UserID: "bob"}))

	for name, tc := range map[string]struct {
		in      form
		message string
	}{
		"missing user": {form{}, "user_id is required"},
		"bad alphabet": {form{UserID: "alice doe"}, "user_id may only contain"},
		"too long":     {form{UserID: strings.Repeat("a", 256)}, "user_id must be at most 255 characters"},
		"bad email":    {form{UserID: "alice", Email: "nope"}, "email must be a valid email address"},
		"threshold":    {form{UserID: "alice", Threshold: &high}, "similarity_threshold must be at most 100"},
	} {
		t.Run(name, func(t *testing.T) {
			err := v.Validate(&tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Message(), tc.message)
		})
	}
}
