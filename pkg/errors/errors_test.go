package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(GenerationFailed, "llm generation failed")
	assert.Equal(t, "llm generation failed", err.Error())

	var e *Error
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, GenerationFailed, e.Code())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(cause, GenerationFailed, "llm generation failed")

	assert.Equal(t, "llm generation failed: connection reset", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, GenerationFailed, "should be dropped"))
	assert.Nil(t, WithFields(nil, Fields{"k": "v"}))
}

func TestWithFields(t *testing.T) {
	err := WithFields(New(ToolNotFound, "tool not found"), Fields{"tool_name": "sqrt"})

	var e *Error
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, ToolNotFound, e.Code())
	assert.Equal(t, "sqrt", e.Fields()["tool_name"])
	assert.Contains(t, err.Error(), "tool_name=sqrt")
}

func TestWithFieldsMerges(t *testing.T) {
	err := WithFields(New(InvalidInput, "bad config"), Fields{"a": 1})
	err = WithFields(err, Fields{"b": 2})

	var e *Error
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, 1, e.Fields()["a"])
	assert.Equal(t, 2, e.Fields()["b"])
	assert.Equal(t, InvalidInput, e.Code())
}

func TestWithFieldsForeignError(t *testing.T) {
	err := WithFields(fmt.Errorf("plain"), Fields{"k": "v"})

	var e *Error
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, Unknown, e.Code())
}

func TestIsMatchesOnCode(t *testing.T) {
	err := Wrap(fmt.Errorf("cause"), NoPathFound, "no valid path found in tree")
	assert.True(t, stderrors.Is(err, New(NoPathFound, "anything")))
	assert.False(t, stderrors.Is(err, New(NoIterations, "anything")))
}

func TestFieldsReturnsCopy(t *testing.T) {
	err := WithFields(New(Unknown, "x"), Fields{"k": "v"})

	var e *Error
	assert.True(t, stderrors.As(err, &e))

	fields := e.Fields()
	fields["k"] = "mutated"
	assert.Equal(t, "v", e.Fields()["k"])
}
