package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsChain(t *testing.T) {
	root := New("root")
	err := Wrapf(Wrap(root, "middle"), "outer %d", 1)

	assert.True(t, Is(err, root))
	assert.Equal(t, "outer 1: middle: root", err.Error())
}

func TestStackTrace(t *testing.T) {
	assert.Nil(t, StackTrace(fmt.Errorf("plain")))
	assert.Nil(t, StackTrace(nil))

	err := fmt.Errorf("outer: %w", WithStack(fmt.Errorf("plain")))
	trace := StackTrace(err)

	assert.NotEmpty(t, trace)
	assert.Contains(t, fmt.Sprintf("%+v", trace[0]), "TestStackTrace")
}
