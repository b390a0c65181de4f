package binder_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/fieldstate"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	form, err := newBinder(t).Bind(contactForm)
	require.NoError(t, err)

	t.Run("fields start untouched", func(t *testing.T) {
		t.Parallel()
		s := form.NewSession()
		assert.Same(t, form, s.Form())
		for name, st := range s.States() {
			assert.True(t, st.IsUntouched(), name)
		}
		assert.Len(t, s.States(), 4)
	})

	t.Run("touch follows the value", func(t *testing.T) {
		t.Parallel()
		s := form.NewSession()

		st, v, err := s.Touch(ctx, "email", "")
		require.NoError(t, err)
		assert.Equal(t, fieldstate.State{Status: fieldstate.Invalid, Message: validator.MsgRequired}, st)
		assert.Equal(t, "required", v.Rule)

		st, _, err = s.Touch(ctx, "email", "jane@")
		require.NoError(t, err)
		assert.Equal(t, validator.MsgInvalidEmail, st.Message)

		st, _, err = s.Touch(ctx, "email", "jane@acme.com")
		require.NoError(t, err)
		assert.True(t, st.IsValid())

		other, ok := s.State("name")
		require.True(t, ok)
		assert.True(t, other.IsUntouched())
	})

	t.Run("touch unknown field", func(t *testing.T) {
		t.Parallel()
		_, _, err := form.NewSession().Touch(ctx, "nope", "x")
		assert.ErrorIs(t, err, binder.ErrUnknownField)

		_, ok := form.NewSession().State("nope")
		assert.False(t, ok)
	})

	t.Run("submit updates every field", func(t *testing.T) {
		t.Parallel()
		s := form.NewSession()
		sub, err := s.Submit(ctx, binder.Values{"name": "", "email": "jane@acme.com", "phone": "abc"})
		require.NoError(t, err)
		assert.False(t, sub.Allowed())

		states := s.States()
		assert.True(t, states["name"].IsInvalid())
		assert.True(t, states["email"].IsValid())
		assert.True(t, states["phone"].IsInvalid())
		assert.True(t, states["notes"].IsValid())
		assert.Equal(t, states, sub.States)

		require.NoError(t, s.Reset(ctx))
		st, _ := s.State("name")
		assert.True(t, st.IsUntouched())
	})

	t.Run("transitions are logged", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		b := binder.New(validator.MustNewRegistry(), binder.WithLogger(logger.New(
			logger.WithOutput(buf),
			logger.WithLevelName("debug"),
		)))
		f, err := b.Bind(contactForm)
		require.NoError(t, err)

		s := f.NewSession()
		_, _, err = s.Touch(ctx, "name", "")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"field":"name"`)
		assert.Contains(t, buf.String(), "untouched")
		assert.Contains(t, buf.String(), `"form":"contact"`)
		assert.Contains(t, buf.String(), `"component":"binder"`)

		buf.Reset()
		require.NoError(t, s.Reset(ctx))
		assert.Equal(t, 1, strings.Count(buf.String(), "field state changed"), "only the touched field resets")
		assert.Contains(t, buf.String(), `"field":"name"`)
	})
}
