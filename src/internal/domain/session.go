package domain

import (
	"errors"
	"strings"
)

// Session is what a successful login hands to the account screen.
type Session struct {
	DUI     string
	Usuario string
	Role    Role
	// Token is a placeholder bearer value; it is never refreshed.
	Token string
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.DUI) == "" {
		return errors.New("session has no client dui")
	}
	return nil
}
