package entities

import "mergington/internal/domain"

// Activity is an extracurricular offering and its roster.
// MaxParticipants is advisory: signups never check it.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// AddParticipant appends email to the roster.
// Returns domain.ErrAlreadySignedUp if email is already present.
func (a *Activity) AddParticipant(email string) error {
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant drops email from the roster, keeping the order of the others.
// Returns domain.ErrNotSignedUp if email is absent.
func (a *Activity) RemoveParticipant(email string) error {
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}

// Clone returns a deep copy so callers never share the roster slice.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = append([]string(nil), a.Participants...)
	return c
}
