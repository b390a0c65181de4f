package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl string
		want []validator.RuleSpec
	}{
		{
			name: "empty declaration",
			decl: "",
			want: []validator.RuleSpec{},
		},
		{
			name: "whitespace only",
			decl: "   ",
			want: []validator.RuleSpec{},
		},
		{
			name: "single rule",
			decl: "required",
			want: []validator.RuleSpec{{ID: "required"}},
		},
		{
			name: "rules with params in order",
			decl: "required,minLength:8,maxLength:64",
			want: []validator.RuleSpec{
				{ID: "required"},
				{ID: "minLength", Param: "8", HasParam: true},
				{ID: "maxLength", Param: "64", HasParam: true},
			},
		},
		{
			name: "whitespace around elements is insignificant",
			decl: "  required , email ,  minLength : 3 ",
			want: []validator.RuleSpec{
				{ID: "required"},
				{ID: "email"},
				{ID: "minLength", Param: "3", HasParam: true},
			},
		},
		{
			name: "empty elements are dropped",
			decl: "required,,email,",
			want: []validator.RuleSpec{{ID: "required"}, {ID: "email"}},
		},
		{
			name: "element with empty id is dropped",
			decl: ":8,required, :x",
			want: []validator.RuleSpec{{ID: "required"}},
		},
		{
			name: "trailing colon keeps an empty param",
			decl: "minLength:",
			want: []validator.RuleSpec{{ID: "minLength", HasParam: true}},
		},
		{
			name: "param is split at the first colon only",
			decl: "minLength:8:9",
			want: []validator.RuleSpec{{ID: "minLength", Param: "8:9", HasParam: true}},
		},
		{
			name: "unknown rules are kept",
			decl: "zipcode,required",
			want: []validator.RuleSpec{{ID: "zipcode"}, {ID: "required"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.Parse(tt.decl))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	specs := validator.Parse(" required , minLength:8, email ")
	assert.Equal(t, "required,minLength:8,email", validator.Format(specs))
	assert.Equal(t, "", validator.Format(nil))
	assert.Equal(t, "minLength:", validator.RuleSpec{ID: "minLength", HasParam: true}.String())
}
