package events

// EventCollector is embedded in aggregates to collect domain events during state transitions.
type EventCollector struct {
	pending []DomainEvent
}

// Record appends a domain event to the collector.
func (c *EventCollector) Record(event DomainEvent) {
	c.pending = append(c.pending, event)
}

// Events returns the pending events without clearing them.
func (c *EventCollector) Events() []DomainEvent {
	return c.pending
}

// ClearEvents returns the pending events and resets the collector.
func (c *EventCollector) ClearEvents() []DomainEvent {
	out := c.pending
	c.pending = nil
	return out
}
