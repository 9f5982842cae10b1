package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_HappyPath(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, StatePending, m.Current())

	for _, next := range []State{
		StateExtracting, StateValidating, StateAIFilling,
		StateSplitting, StatePersisting, StateProcessed,
	} {
		require.NoError(t, m.To(next))
		assert.Equal(t, next, m.Current())
	}
}

func TestMachine_ValidatingMaySkipAIFilling(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.To(StateExtracting))
	require.NoError(t, m.To(StateValidating))
	assert.NoError(t, m.To(StateSplitting))
}

func TestMachine_ErrorReachableFromEveryWorkingState(t *testing.T) {
	paths := [][]State{
		{StateExtracting},
		{StateExtracting, StateValidating},
		{StateExtracting, StateValidating, StateAIFilling},
		{StateExtracting, StateValidating, StateSplitting},
		{StateExtracting, StateValidating, StateSplitting, StatePersisting},
	}
	for _, path := range paths {
		m := NewMachine()
		for _, s := range path {
			require.NoError(t, m.To(s))
		}
		assert.NoError(t, m.To(StateError), "error should be reachable from %s", m.Current())
	}
}

func TestMachine_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []State
		next State
	}{
		{"pending cannot error directly", nil, StateError},
		{"pending cannot skip to splitting", nil, StateSplitting},
		{"processed is terminal", []State{StateExtracting, StateValidating, StateSplitting, StatePersisting, StateProcessed}, StateExtracting},
		{"error is terminal", []State{StateExtracting, StateError}, StateExtracting},
		{"no going back", []State{StateExtracting, StateValidating}, StateExtracting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, s := range tt.path {
				require.NoError(t, m.To(s))
			}
			assert.Error(t, m.To(tt.next))
		})
	}
}
