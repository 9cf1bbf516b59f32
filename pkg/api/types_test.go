package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPad(t *testing.T) {
	g := Grid{{"a", "b", "c"}, {"d"}, {}}
	p := g.Pad()

	require.Equal(t, 3, g.MaxColumns())
	for i, r := range p {
		assert.Len(t, r, 3, "row %d", i)
	}
	assert.Equal(t, Row{"d", "", ""}, p[1])
	assert.Len(t, g[1], 1, "input must not be mutated")

	assert.Equal(t, p, p.Pad(), "padding is idempotent")
}

func TestGridPadEmpty(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.MaxColumns())
	assert.Empty(t, g.Pad())
	assert.Nil(t, g.Header())
	assert.Nil(t, g.Body())
}

func TestGridHeaderBody(t *testing.T) {
	g := Grid{{"h"}, {"1"}, {"2"}}
	assert.Equal(t, Row{"h"}, g.Header())
	assert.Equal(t, []Row{{"1"}, {"2"}}, g.Body())
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty", ErrEmptyInput, MsgEmptyInput},
		{"wrapped empty", fmt.Errorf("convert: %w", ErrEmptyInput), MsgEmptyInput},
		{"invalid", ErrInvalidFormat, MsgInvalidFormat},
		{"conversion", &ConversionError{Err: errors.New("boom")}, MsgConversion},
		{"unknown", errors.New("other"), MsgConversion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidFormat, ErrEmptyInput)
	assert.NotErrorIs(t, ErrEmptyInput, ErrInvalidFormat)

	cause := errors.New("boom")
	var err error = &ConversionError{Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "conversion failed: boom", err.Error())

	var ce *ConversionError
	assert.ErrorAs(t, fmt.Errorf("emit: %w", err), &ce)
}

func TestResultMessage(t *testing.T) {
	ok := Result{Markdown: "| a |\n| --- |"}
	assert.True(t, ok.OK())
	assert.Equal(t, ok.Markdown, ok.Message())

	bad := Result{Err: ErrEmptyInput}
	assert.False(t, bad.OK())
	assert.Equal(t, MsgEmptyInput, bad.Message())
}
