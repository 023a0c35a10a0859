package domain

import "time"

// Session binds a shop (and optionally a user email) to an OAuth access
// token. Sessions are written by the external install flow; this system only
// reads them. A session without an access token is unusable.
type Session struct {
	ID          string     `json:"id"`
	Shop        string     `json:"shop"`
	State       string     `json:"state"`
	IsOnline    bool       `json:"is_online"`
	Scope       string     `json:"scope"`
	Expires     *time.Time `json:"expires,omitempty"`
	AccessToken string     `json:"-"`
	Email       string     `json:"email"`
}

// StoreSession is the result of session resolution: the shop a caller is
// acting on and the token to use against it.
type StoreSession struct {
	Shop        string
	AccessToken string
}
