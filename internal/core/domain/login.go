package domain

import "errors"

// LoginState is a step of a single login attempt.
type LoginState string

const (
	LoginAnonymous            LoginState = "anonymous"
	LoginCredentialsSubmitted LoginState = "credentials_submitted"
	LoginVerified             LoginState = "verified"
	LoginRejected             LoginState = "rejected"
	LoginTokenIssued          LoginState = "token_issued"
)

// loginTransitions defines the allowed moves of a login attempt. Rejected
// and TokenIssued are terminal; a new attempt starts from Anonymous.
var loginTransitions = map[LoginState][]LoginState{
	LoginAnonymous:            {LoginCredentialsSubmitted},
	LoginCredentialsSubmitted: {LoginVerified, LoginRejected},
	LoginVerified:             {LoginTokenIssued},
}

var ErrInvalidLoginTransition = errors.New("invalid login state transition")

// CanTransitionTo reports whether a login attempt may move from s to next.
func (s LoginState) CanTransitionTo(next LoginState) bool {
	for _, allowed := range loginTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s LoginState) Terminal() bool {
	return s == LoginRejected || s == LoginTokenIssued
}

// LoginAttempt tracks one pass through the login state machine.
type LoginAttempt struct {
	Username string
	state    LoginState
}

// NewLoginAttempt starts an attempt in the Anonymous state.
func NewLoginAttempt() *LoginAttempt {
	return &LoginAttempt{state: LoginAnonymous}
}

// State returns the current state.
func (a *LoginAttempt) State() LoginState { return a.state }

// Advance moves the attempt to next or returns ErrInvalidLoginTransition.
func (a *LoginAttempt) Advance(next LoginState) error {
	if !a.state.CanTransitionTo(next) {
		return ErrInvalidLoginTransition
	}
	a.state = next
	return nil
}
