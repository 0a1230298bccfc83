package entity

import "time"

// User is a shopper account.
// Password holds the bcrypt hash, never the plain text. The reset fields
// are set by a forgot-password request and cleared after a reset.
type User struct {
	ID               int    `json:"id"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ResetToken       string `json:"resetToken,omitempty"`
	ResetTokenExpiry *int64 `json:"resetTokenExpiry,omitempty"` // unix millis
}

// SetResetToken stores tok on the user, replacing any previous token.
func (u *User) SetResetToken(tok string, expiresAt time.Time) {
	ms := expiresAt.UnixMilli()
	u.ResetToken = tok
	u.ResetTokenExpiry = &ms
}

// ClearResetToken consumes the reset token.
func (u *User) ClearResetToken() {
	u.ResetToken = ""
	u.ResetTokenExpiry = nil
}

// HasLiveResetToken reports whether tok matches the stored token and has not expired at now.
func (u *User) HasLiveResetToken(tok string, now time.Time) bool {
	if tok == "" || u.ResetToken != tok || u.ResetTokenExpiry == nil {
		return false
	}
	return *u.ResetTokenExpiry > now.UnixMilli()
}
