package application

import "expvar"

// Counters published on /debug/vars.
var (
	signups       = expvar.NewInt("auth_signups")
	logins        = expvar.NewInt("auth_logins")
	passwordReset = expvar.NewInt("auth_password_resets")
	cartWrites    = expvar.NewInt("cart_writes")
)

func countSignup()    { signups.Add(1) }
func countLogin()     { logins.Add(1) }
func countReset()     { passwordReset.Add(1) }
func countCartWrite() { cartWrites.Add(1) }
