package model

import "fmt"

// Session represents the visitor's cookie-backed session.
type Session struct {
	Data SessionData
}

func (self *Session) String() string {
	return fmt.Sprintf("Data={%v}", &self.Data)
}

func (self *Session) Theme() Theme {
	if self == nil || !self.Data.Theme.Valid() {
		return ""
	}
	return self.Data.Theme
}

// SessionData represents the data attached to the session. The cookie holds
// at most one key.
type SessionData struct {
	Theme Theme `json:"theme,omitempty"`
}

func (self *SessionData) String() string {
	return fmt.Sprintf("Theme=%q", self.Theme)
}
