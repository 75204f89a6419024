package output

import "context"

// RosterChange describes a successful signup or unregister.
type RosterChange struct {
	Activity string
	Email    string
	Teacher  string
	Removed  bool
	// Roster size after the change, and the activity's advisory capacity.
	Participants    int
	MaxParticipants int
}

// RosterNotifier is told about roster changes. Notify must not block the caller
// for long and its failures never fail the request.
type RosterNotifier interface {
	Notify(ctx context.Context, change RosterChange)
}
