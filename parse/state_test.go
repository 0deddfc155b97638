package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState_Cursor(t *testing.T) {
	state := NewState([]string{"a", "b", "c"})

	assert.Equal(t, -1, state.Pos(), "a fresh state sits before the first argument")
	assert.Equal(t, "", state.CurrentArg())
	assert.Equal(t, 3, state.Len())

	assert.True(t, state.Advance())
	assert.Equal(t, "a", state.CurrentArg())
	assert.Equal(t, "b", state.Peek(), "Peek should not move the cursor")
	assert.Equal(t, 0, state.Pos())

	state.Skip()
	assert.Equal(t, "b", state.CurrentArg(), "Skip consumes the lookahead token")

	assert.True(t, state.Advance())
	assert.Equal(t, "c", state.CurrentArg())
	assert.False(t, state.HasNext())
	assert.Equal(t, "", state.Peek())
	assert.False(t, state.Advance(), "advancing past the end should fail")
}

func TestDefaultState_Rest(t *testing.T) {
	state := NewState([]string{"a", "b", "c"})
	state.Advance()

	assert.Equal(t, []string{"b", "c"}, state.Rest())

	state.Advance()
	state.Advance()
	assert.Nil(t, state.Rest(), "Rest at the last argument is empty")
}

func TestDefaultState_ArgAt(t *testing.T) {
	state := NewState([]string{"a", "b"})

	arg, err := state.ArgAt(1)
	assert.Nil(t, err)
	assert.Equal(t, "b", arg)

	_, err = state.ArgAt(2)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = state.ArgAt(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestDefaultState_Empty(t *testing.T) {
	state := NewState(nil)

	assert.False(t, state.HasNext())
	assert.False(t, state.Advance())
	assert.Equal(t, 0, state.Len())
	assert.Nil(t, state.Rest())
}
