package transactions

// Event is one recorded change to an element or instance. The concrete event
// types live next to their entity kinds; embedding EventBase marks a type as
// an Event so the set of event types stays closed.
type Event interface {
	isEvent()
}

// EventBase is embedded by concrete event types to implement Event.
type EventBase struct{}

func (EventBase) isEvent() {}

// PushEvent is the sink the entity tiers record their changes into.
type PushEvent interface {
	PushEvent(event Event)
}

var _ PushEvent = (*Transaction)(nil)

// Transaction collects events in the order they were pushed so that a backend
// can apply a batch of edits as one unit between frames. A transaction
// belongs to the goroutine that edits through it. A transaction that is never
// processed simply discards its events.
type Transaction struct {
	events []Event
}

// Create a new empty Transaction
func New() *Transaction {
	return &Transaction{}
}

// PushEvent appends an event to the transaction.
func (t *Transaction) PushEvent(event Event) {
	t.events = append(t.events, event)
}

// Process removes and returns the events in the order they were pushed.
func (t *Transaction) Process() []Event {
	events := t.events
	t.events = nil
	return events
}

// Len returns the number of recorded events.
func (t *Transaction) Len() int {
	return len(t.events)
}

// IsEmpty checks if the transaction recorded no events
func (t *Transaction) IsEmpty() bool {
	return len(t.events) == 0
}

// Processor applies a finished transaction, typically by replaying its events
// into GPU-resident arrays.
type Processor interface {
	Process(transaction *Transaction)
}
