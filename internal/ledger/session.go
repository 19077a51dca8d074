package ledger

import "fjacquet/finbot/internal/models"

// Session carries the logged-in user into every service call.
type Session struct {
	User models.User
}

// UserID returns the id of the session user.
func (s *Session) UserID() int64 {
	return s.User.ID
}

// Tone returns the session user's tone, or the default tone.
func (s *Session) Tone() models.Tone {
	return s.User.Tone.OrDefault()
}

func (s *Session) valid() bool {
	return s != nil && s.User.ID != 0
}
