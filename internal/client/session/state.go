package session

// State enumerates the session lifecycle.
//
// Transitions:
//
//	Anonymous      -> Authenticating   login/register submitted
//	Authenticating -> Authenticated    token grant + profile fetch succeeded
//	Authenticating -> Anonymous        credentials rejected
//	Authenticated  -> Anonymous        explicit logout
//	Authenticated  -> Expired -> Anonymous   401 on any authenticated call
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}
