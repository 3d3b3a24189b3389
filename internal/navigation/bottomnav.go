package navigation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

type State int

const (
	StateUnknown State = iota
	StateChecking
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// AdminChecker answers whether a username is in the admin set. *Client
// implements it over HTTP.
type AdminChecker interface {
	CheckAdmin(ctx context.Context, username string) (bool, error)
}

// Identity exposes the platform's current user. ok is false when the
// platform did not provide a username.
type Identity interface {
	Username() (username string, ok bool)
}

// StaticIdentity is an Identity with a fixed username; empty means absent.
type StaticIdentity string

func (s StaticIdentity) Username() (string, bool) {
	return string(s), s != ""
}

// Match verdicts reported by Debug.
const (
	MatchYes     = "MATCH"
	MatchNo      = "NO MATCH"
	MatchMissing = "MISSING"
)

type DebugInfo struct {
	Username   string `json:"username"`
	SuperAdmin string `json:"super_admin"`
	Match      string `json:"match"`
}

// BottomNav decides whether the admin entry is shown. Each Mount runs the
// check once; results that arrive after Unmount or after a newer check
// started are dropped.
type BottomNav struct {
	identity Identity
	checker  AdminChecker
	logger   *slog.Logger

	mu         sync.Mutex
	superAdmin string
	username   string
	state      State
	isAdmin    bool
	mounted    bool
	gen        uint64
	parent     context.Context
	cancel     context.CancelFunc
}

func NewBottomNav(superAdmin string, identity Identity, checker AdminChecker, logger *slog.Logger) *BottomNav {
	if logger == nil {
		logger = slog.Default()
	}
	return &BottomNav{
		identity:   identity,
		checker:    checker,
		logger:     logger,
		superAdmin: strings.TrimSpace(superAdmin),
	}
}

// Mount starts the admin check. The returned channel is closed once the
// check has settled or been abandoned.
func (n *BottomNav) Mount(ctx context.Context) <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.mounted = true
	n.parent = ctx
	return n.startLocked()
}

// Unmount cancels an in-flight check and stops accepting its result.
func (n *BottomNav) Unmount() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.mounted = false
	n.gen++
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

// SetSuperAdmin changes the configured super admin and, while mounted,
// re-runs the check.
func (n *BottomNav) SetSuperAdmin(superAdmin string) <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()

	superAdmin = strings.TrimSpace(superAdmin)
	if superAdmin == n.superAdmin || !n.mounted {
		n.superAdmin = superAdmin
		return closed()
	}
	n.superAdmin = superAdmin
	return n.startLocked()
}

func (n *BottomNav) startLocked() <-chan struct{} {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.gen++
	gen := n.gen

	n.state = StateUnknown
	n.isAdmin = false

	username, ok := n.identity.Username()
	username = strings.TrimSpace(username)
	if !ok || username == "" {
		n.username = ""
		return closed()
	}
	n.username = username

	if n.superAdmin != "" && username == n.superAdmin {
		n.state = StateResolved
		n.isAdmin = true
		return closed()
	}

	ctx, cancel := context.WithCancel(n.parent)
	n.cancel = cancel
	n.state = StateChecking

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		isAdmin, err := n.checker.CheckAdmin(ctx, username)
		if err != nil {
			n.logger.Error("error checking admin role", "username", username, "error", err)
			isAdmin = false
		}

		n.mu.Lock()
		defer n.mu.Unlock()
		if gen != n.gen {
			n.logger.Debug("discarding stale admin check", "username", username)
			return
		}
		n.state = StateResolved
		n.isAdmin = isAdmin
		n.cancel = nil
	}()

	return done
}

// State reports the check state and, once resolved, whether the user is an
// admin.
func (n *BottomNav) State() (State, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state, n.state == StateResolved && n.isAdmin
}

// Items returns the navigation entries for the current state.
func (n *BottomNav) Items() []Item {
	_, isAdmin := n.State()
	return Items(isAdmin)
}

func (n *BottomNav) Debug() DebugInfo {
	n.mu.Lock()
	defer n.mu.Unlock()

	info := DebugInfo{Username: n.username, SuperAdmin: n.superAdmin}
	switch {
	case n.username == "" || n.superAdmin == "":
		info.Match = MatchMissing
	case n.username == n.superAdmin:
		info.Match = MatchYes
	default:
		info.Match = MatchNo
	}
	return info
}

func closed() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
