package pipeline

import "fmt"

// State names one step of processing a webhook record. Transitions go
// through a single function so illegal moves (like erroring a processed
// record) are unrepresentable at runtime.
type State string

const (
	StatePending    State = "pending"
	StateExtracting State = "extracting"
	StateValidating State = "validating"
	StateAIFilling  State = "ai_filling"
	StateSplitting  State = "splitting"
	StatePersisting State = "persisting"
	StateProcessed  State = "processed"
	StateError      State = "error"
)

var transitions = map[State][]State{
	StatePending:    {StateExtracting},
	StateExtracting: {StateValidating, StateError},
	StateValidating: {StateAIFilling, StateSplitting, StateError},
	StateAIFilling:  {StateSplitting, StateError},
	StateSplitting:  {StatePersisting, StateError},
	StatePersisting: {StateProcessed, StateError},
	// processed and error are terminal; error records re-enter as pending
	// only through an explicit retry on the inbox row.
	StateProcessed: nil,
	StateError:     nil,
}

// Machine tracks one record's progress.
type Machine struct {
	current State
}

func NewMachine() *Machine {
	return &Machine{current: StatePending}
}

func (m *Machine) Current() State { return m.current }

// To advances the machine, rejecting transitions the table does not allow.
func (m *Machine) To(next State) error {
	for _, allowed := range transitions[m.current] {
		if allowed == next {
			m.current = next
			return nil
		}
	}
	return fmt.Errorf("illegal state transition %s -> %s", m.current, next)
}
