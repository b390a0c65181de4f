package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestValidateAll(t *testing.T) {
	t.Parallel()
	reg := validator.MustNewRegistry()

	mustCompile := func(t *testing.T, decl string) validator.FieldRules {
		t.Helper()
		rules, err := reg.CompileString(decl)
		require.NoError(t, err)
		return rules
	}

	t.Run("second of three fields fails", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateAll([]validator.Field[string]{
			{Ref: "name", Rules: mustCompile(t, "required"), Value: "Jane"},
			{Ref: "email", Rules: mustCompile(t, "required,email"), Value: "jane@gmail.com"},
			{Ref: "phone", Rules: mustCompile(t, "phone"), Value: "555-123-4567"},
		})

		assert.False(t, res.AllValid)
		ref, ok := res.FirstInvalid()
		require.True(t, ok)
		assert.Equal(t, "email", ref)

		require.Len(t, res.Fields, 3)
		assert.True(t, res.Fields[0].Verdict.OK)
		assert.Equal(t, validator.MsgBusinessEmail, res.Fields[1].Verdict.Message)
		assert.True(t, res.Fields[2].Verdict.OK)
	})

	t.Run("evaluates every field after a failure", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateAll([]validator.Field[int]{
			{Ref: 1, Rules: mustCompile(t, "required"), Value: ""},
			{Ref: 2, Rules: mustCompile(t, "minLength:3"), Value: "ab"},
			{Ref: 3, Rules: mustCompile(t, "maxLength:1"), Value: "ab"},
		})

		ref, ok := res.FirstInvalid()
		require.True(t, ok)
		assert.Equal(t, 1, ref)
		assert.Len(t, res.Invalid(), 3)
		assert.Equal(t, "Must be no more than 1 characters", res.Fields[2].Verdict.Message)
	})

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateAll([]validator.Field[string]{
			{Ref: "a", Rules: mustCompile(t, "required"), Value: "x"},
			{Ref: "b", Value: ""},
		})

		assert.True(t, res.AllValid)
		_, ok := res.FirstInvalid()
		assert.False(t, ok)
		assert.Empty(t, res.Invalid())
		assert.NoError(t, res.Err())
	})

	t.Run("empty form may submit", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateAll[string](nil)
		assert.True(t, res.AllValid)
		assert.Empty(t, res.Fields)
	})

	t.Run("pointer references are returned untouched", func(t *testing.T) {
		t.Parallel()
		type input struct{ name string }
		a, b := &input{"a"}, &input{"b"}
		res := validator.ValidateAll([]validator.Field[*input]{
			{Ref: a, Rules: mustCompile(t, "required"), Value: "ok"},
			{Ref: b, Rules: mustCompile(t, "required"), Value: ""},
		})
		ref, ok := res.FirstInvalid()
		require.True(t, ok)
		assert.Same(t, b, ref)
	})

	t.Run("error form lists failing fields in order", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateAll([]validator.Field[string]{
			{Ref: "email", Rules: mustCompile(t, "email"), Value: "bad"},
			{Ref: "name", Rules: mustCompile(t, "required"), Value: "ok"},
			{Ref: "phone", Rules: mustCompile(t, "phone"), Value: "bad"},
		})

		err := res.Err()
		require.Error(t, err)
		verrs, ok := validator.AsValidationErrors(err)
		require.True(t, ok)
		require.Len(t, verrs, 2)
		assert.Equal(t, "phone", verrs[1].Field)
		assert.Equal(t, validator.ValidationError{Field: "email", Message: validator.MsgInvalidEmail, Rule: "email"}, verrs[0])
	})
}
