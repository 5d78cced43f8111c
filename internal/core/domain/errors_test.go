package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptError_Message(t *testing.T) {
	err := &ScriptError{Stderr: "  execution error: boom (-2741)  \n"}
	assert.Equal(t, "applescript: execution error: boom (-2741)", err.Error())
}

func TestScriptError_EmptyStderr(t *testing.T) {
	err := &ScriptError{}
	assert.Equal(t, "applescript: script execution failed", err.Error())
}

func TestScriptError_UnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get contact: %w", &ScriptError{Stderr: "boom"})

	var scriptErr *ScriptError
	assert.True(t, errors.As(wrapped, &scriptErr))
	assert.Equal(t, "boom", scriptErr.Stderr)
}
