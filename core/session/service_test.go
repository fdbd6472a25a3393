package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"

	"github.com/verilearn/verilearn/core"
)

type fakeKeeper struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func newFakeKeeper() *fakeKeeper {
	return &fakeKeeper{entries: make(map[string]string)}
}

func (k *fakeKeeper) Get(key string) (string, bool, error) {
	if k.getErr != nil {
		return "", false, k.getErr
	}
	value, ok := k.entries[key]
	return value, ok, nil
}

func (k *fakeKeeper) Set(key, value string) error {
	if k.setErr != nil {
		return k.setErr
	}
	k.entries[key] = value
	return nil
}

func (k *fakeKeeper) Delete(keys ...string) error {
	for _, key := range keys {
		delete(k.entries, key)
	}
	return nil
}

type fakeIdentity struct {
	usr   User
	err   error
	calls int
}

func (id *fakeIdentity) Me(context.Context) (User, error) {
	id.calls++
	if id.err != nil {
		return User{}, id.err
	}
	return id.usr, nil
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func persist(t *testing.T, k *fakeKeeper, token string, usr User) {
	t.Helper()
	raw, err := json.Marshal(usr)
	if err != nil {
		t.Fatalf("persist() failed: %v", err)
	}
	k.entries[TokenKey] = token
	k.entries[UserKey] = string(raw)
}

func TestStore_Initialize(t *testing.T) {
	usr := User{ID: 1, Name: "Alice Johnson", Email: "alice@test.test", Role: RoleStudent}

	t.Run("no persisted session", func(t *testing.T) {
		st := NewStore(newFakeKeeper(), &fakeIdentity{usr: usr}, nopLogger{})
		st.Initialize(context.Background())

		state := st.State()
		if state.Loading {
			t.Error("state.Loading = true, want false")
		}
		if state.Session != nil {
			t.Errorf("state.Session = %+v, want nil", state.Session)
		}
	})

	t.Run("persisted session is revalidated", func(t *testing.T) {
		keeper := newFakeKeeper()
		persist(t, keeper, "tok", usr)
		// the backend holds a newer name
		fresh := usr
		fresh.Name = "Alice J."
		id := &fakeIdentity{usr: fresh}

		st := NewStore(keeper, id, nopLogger{})
		st.Initialize(context.Background())

		state := st.State()
		if state.Loading {
			t.Error("state.Loading = true, want false")
		}
		if state.Session == nil {
			t.Fatal("state.Session = nil, want session")
		}
		if state.Session.User.Name != "Alice J." {
			t.Errorf("User.Name = %q, want %q", state.Session.User.Name, "Alice J.")
		}
		if state.Session.Token != "tok" {
			t.Errorf("Token = %q, want %q", state.Session.Token, "tok")
		}
		// the revalidated record must be re-persisted
		var persisted User
		if err := json.Unmarshal([]byte(keeper.entries[UserKey]), &persisted); err != nil {
			t.Fatalf("unmarshalling persisted user: %v", err)
		}
		if persisted.Name != "Alice J." {
			t.Errorf("persisted Name = %q, want %q", persisted.Name, "Alice J.")
		}
	})

	t.Run("failed revalidation wipes the session", func(t *testing.T) {
		keeper := newFakeKeeper()
		persist(t, keeper, "stale", usr)
		st := NewStore(keeper, &fakeIdentity{err: errors.Wrap(core.ErrAuthFailed, "expired")}, nopLogger{})
		st.Initialize(context.Background())

		state := st.State()
		if state.Loading {
			t.Error("state.Loading = true, want false")
		}
		if state.Session != nil {
			t.Errorf("state.Session = %+v, want nil", state.Session)
		}
		if len(keeper.entries) != 0 {
			t.Errorf("keeper entries = %v, want none", keeper.entries)
		}
	})

	t.Run("lone token is wiped", func(t *testing.T) {
		keeper := newFakeKeeper()
		keeper.entries[TokenKey] = "orphan"
		id := &fakeIdentity{usr: usr}
		st := NewStore(keeper, id, nopLogger{})
		st.Initialize(context.Background())

		if st.State().Session != nil {
			t.Error("state.Session != nil, want nil")
		}
		if len(keeper.entries) != 0 {
			t.Errorf("keeper entries = %v, want none", keeper.entries)
		}
		if id.calls != 0 {
			t.Errorf("Me() calls = %d, want 0", id.calls)
		}
	})

	t.Run("lone user is wiped", func(t *testing.T) {
		keeper := newFakeKeeper()
		raw, _ := json.Marshal(usr)
		keeper.entries[UserKey] = string(raw)
		st := NewStore(keeper, &fakeIdentity{usr: usr}, nopLogger{})
		st.Initialize(context.Background())

		if st.State().Session != nil {
			t.Error("state.Session != nil, want nil")
		}
		if len(keeper.entries) != 0 {
			t.Errorf("keeper entries = %v, want none", keeper.entries)
		}
	})

	t.Run("corrupt user entry is wiped", func(t *testing.T) {
		keeper := newFakeKeeper()
		keeper.entries[TokenKey] = "tok"
		keeper.entries[UserKey] = "{not json"
		st := NewStore(keeper, &fakeIdentity{usr: usr}, nopLogger{})
		st.Initialize(context.Background())

		if st.State().Session != nil {
			t.Error("state.Session != nil, want nil")
		}
		if len(keeper.entries) != 0 {
			t.Errorf("keeper entries = %v, want none", keeper.entries)
		}
	})

	t.Run("revalidates at most once", func(t *testing.T) {
		keeper := newFakeKeeper()
		persist(t, keeper, "tok", usr)
		id := &fakeIdentity{usr: usr}
		st := NewStore(keeper, id, nopLogger{})

		st.Initialize(context.Background())
		st.Initialize(context.Background())
		st.Initialize(context.Background())

		if id.calls != 1 {
			t.Errorf("Me() calls = %d, want 1", id.calls)
		}
	})
}

func TestStore_LoginLogout(t *testing.T) {
	usr := User{ID: 7, Name: "Bob Smith", Email: "bob@test.test", Role: RoleTeacher}

	t.Run("login persists both entries", func(t *testing.T) {
		keeper := newFakeKeeper()
		st := NewStore(keeper, &fakeIdentity{usr: usr}, nopLogger{})

		if err := st.Login("fresh", usr); err != nil {
			t.Fatalf("Login() failed: %v", err)
		}
		if keeper.entries[TokenKey] != "fresh" {
			t.Errorf("persisted token = %q, want %q", keeper.entries[TokenKey], "fresh")
		}
		if _, ok := keeper.entries[UserKey]; !ok {
			t.Error("user entry not persisted")
		}
		if st.Token() != "fresh" {
			t.Errorf("Token() = %q, want %q", st.Token(), "fresh")
		}
	})

	t.Run("failed user persist keeps both-or-neither", func(t *testing.T) {
		// the token write goes through, the user write fails
		keeper := newFakeKeeper()
		failing := &failAfterKeeper{fakeKeeper: keeper, failOn: UserKey}
		st := NewStore(failing, &fakeIdentity{usr: usr}, nopLogger{})

		if err := st.Login("tok", usr); err == nil {
			t.Fatal("Login() error = nil, want persist failure")
		}
		if _, ok := keeper.entries[TokenKey]; ok {
			t.Error("token entry left behind after failed login")
		}
	})

	t.Run("logout clears everything", func(t *testing.T) {
		keeper := newFakeKeeper()
		st := NewStore(keeper, &fakeIdentity{usr: usr}, nopLogger{})
		if err := st.Login("tok", usr); err != nil {
			t.Fatalf("Login() failed: %v", err)
		}

		st.Logout()
		if st.State().Session != nil {
			t.Error("state.Session != nil after logout")
		}
		if st.Token() != "" {
			t.Errorf("Token() = %q after logout, want empty", st.Token())
		}
		if len(keeper.entries) != 0 {
			t.Errorf("keeper entries = %v, want none", keeper.entries)
		}
	})
}

type failAfterKeeper struct {
	*fakeKeeper
	failOn string
}

func (k *failAfterKeeper) Set(key, value string) error {
	if key == k.failOn {
		return errors.New("disk full")
	}
	return k.fakeKeeper.Set(key, value)
}

func TestStore_StateIsSnapshot(t *testing.T) {
	usr := User{ID: 1, Name: "Alice Johnson", Email: "alice@test.test", Role: RoleStudent}
	st := NewStore(newFakeKeeper(), &fakeIdentity{usr: usr}, nopLogger{})
	if err := st.Login("tok", usr); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	snap := st.State()
	snap.Session.User.Name = "Mallory"

	if got := st.State().Session.User.Name; got != "Alice Johnson" {
		t.Errorf("mutating a snapshot leaked into the store: Name = %q", got)
	}
}
