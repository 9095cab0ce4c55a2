package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrEvent     = "event"
	AttrPage      = "page"
)

// Operation labels for provider calls.
const (
	OpByPosition = "by_position"
	OpPlayer     = "player"
)

// RosterEvent labels roster mutations.
type RosterEvent string

const (
	EventAssigned RosterEvent = "assigned"
	EventRejected RosterEvent = "rejected"
	EventRemoved  RosterEvent = "removed"
)
