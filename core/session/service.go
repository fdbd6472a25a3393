package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/verilearn/verilearn/core"
)

type (
	// Keeper is the durable client storage holding the two session entries.
	Keeper interface {
		Get(key string) (value string, ok bool, err error)
		Set(key, value string) error
		Delete(keys ...string) error
	}

	// Identity revalidates the persisted token against the backend and
	// returns the authoritative user record.
	Identity interface {
		Me(ctx context.Context) (User, error)
	}

	// Store owns the session. Views only ever borrow State snapshots.
	Store struct {
		keeper Keeper
		id     Identity
		log    core.Logger

		mu       sync.RWMutex
		state    State
		initOnce sync.Once
	}
)

func NewStore(keeper Keeper, id Identity, log core.Logger) *Store {
	return &Store{
		keeper: keeper,
		id:     id,
		log:    log,
		state:  State{Loading: true},
	}
}

// Initialize restores any persisted session optimistically, then issues one
// identity revalidation. The revalidation runs at most once per process no
// matter how often Initialize is called. After it settles, Loading is false
// for the remainder of the process lifetime.
func (st *Store) Initialize(ctx context.Context) {
	st.initOnce.Do(func() { st.initialize(ctx) })
}

func (st *Store) initialize(ctx context.Context) {
	token, usr, ok := st.restore()
	if !ok {
		st.setState(State{Loading: false})
		return
	}

	// optimistic restore; revalidation below settles it
	st.setState(State{Session: &Session{Token: token, User: usr}, Loading: true})

	authUsr, err := st.id.Me(ctx)
	if err != nil {
		// token expired or invalid; wipe unconditionally
		st.wipe()
		st.setState(State{Loading: false})
		return
	}

	if err := st.persistUser(authUsr); err != nil {
		st.log.Warn("session: persisting revalidated user", err)
	}
	st.setState(State{Session: &Session{Token: token, User: authUsr}, Loading: false})
}

// Login installs a freshly authenticated session. No revalidation is needed:
// the server just issued the token.
func (st *Store) Login(token string, usr User) error {
	if err := st.keeper.Set(TokenKey, token); err != nil {
		return errors.Wrap(err, "session: persisting token")
	}
	if err := st.persistUser(usr); err != nil {
		// keep the both-or-neither invariant
		_ = st.keeper.Delete(TokenKey)
		return err
	}
	st.setState(State{Session: &Session{Token: token, User: usr}, Loading: false})
	return nil
}

// Logout clears the persisted entries and the in-memory session.
func (st *Store) Logout() {
	st.wipe()
	st.mu.Lock()
	st.state.Session = nil
	st.mu.Unlock()
}

// State returns a snapshot safe for the caller to hold.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s := st.state
	if s.Session != nil {
		cp := *s.Session
		s.Session = &cp
	}
	return s
}

// Token returns the current bearer token, or "" when logged out. It is the
// gateway's token source.
func (st *Store) Token() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.state.Session == nil {
		return ""
	}
	return st.state.Session.Token
}

// restore loads the persisted pair. A lone entry violates the
// both-or-neither invariant and is wiped on sight.
func (st *Store) restore() (token string, usr User, ok bool) {
	token, hasToken, err := st.keeper.Get(TokenKey)
	if err != nil {
		st.log.Warn("session: reading persisted token", err)
		return "", User{}, false
	}
	rawUsr, hasUser, err := st.keeper.Get(UserKey)
	if err != nil {
		st.log.Warn("session: reading persisted user", err)
		return "", User{}, false
	}
	if !hasToken || !hasUser {
		if hasToken || hasUser {
			st.wipe()
		}
		return "", User{}, false
	}
	if err := json.Unmarshal([]byte(rawUsr), &usr); err != nil {
		st.wipe()
		return "", User{}, false
	}
	return token, usr, true
}

func (st *Store) persistUser(usr User) error {
	raw, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "session: serializing user")
	}
	return errors.Wrap(st.keeper.Set(UserKey, string(raw)), "session: persisting user")
}

func (st *Store) wipe() {
	if err := st.keeper.Delete(TokenKey, UserKey); err != nil {
		st.log.Warn("session: clearing persisted entries", err)
	}
}

func (st *Store) setState(s State) {
	st.mu.Lock()
	st.state = s
	st.mu.Unlock()
}
