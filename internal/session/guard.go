package session

import "context"

// State is the session guard's outcome for one guarded navigation.
type State int

const (
	// StateChecking is the initial state while the cached token is
	// being validated against the server.
	StateChecking State = iota

	// StateAdmitted means the protected view may render.
	StateAdmitted

	// StateRedirecting means the caller must navigate to login.
	// Terminal for this guard instance.
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAdmitted:
		return "admitted"
	case StateRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// Guard gates every admin view. On Check it validates the cached
// token with a verification round trip; absence, rejection and
// network errors are treated identically (clear the cache, redirect).
// There is no automatic refresh: a token expiring mid-session is only
// detected on the next guarded navigation.
type Guard struct {
	client *Client
}

func NewGuard(client *Client) *Guard {
	return &Guard{client: client}
}

func (g *Guard) Check(ctx context.Context) State {
	store := g.client.Store()

	if store.Token() == "" {
		return StateRedirecting
	}

	if err := g.client.Verify(ctx); err != nil {
		store.Clear()
		return StateRedirecting
	}

	return StateAdmitted
}
