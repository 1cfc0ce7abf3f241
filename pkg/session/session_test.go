package session

import (
	"context"
	"errors"
	"testing"

	"github.com/workboard/workspace/pkg/apiclient"
)

type stubAuth struct {
	loginErr    error
	registerErr error
	user        apiclient.User
}

func (a *stubAuth) Login(_ context.Context, username, _ string) (apiclient.User, error) {
	if a.loginErr != nil {
		return apiclient.User{}, a.loginErr
	}
	u := a.user
	u.Username = username
	return u, nil
}

func (a *stubAuth) Register(_ context.Context, username, _, name, _ string) (apiclient.User, error) {
	if a.registerErr != nil {
		return apiclient.User{}, a.registerErr
	}
	u := a.user
	u.Username = username
	u.Name = name
	return u, nil
}

func TestLogin_SetsCurrentUser(t *testing.T) {
	sess := New(&stubAuth{user: apiclient.User{ID: 42}})

	if _, ok := sess.Current(); ok {
		t.Fatalf("fresh session must have no user")
	}

	user, err := sess.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("unexpected user: %+v", user)
	}

	if id, ok := sess.UserID(); !ok || id != 42 {
		t.Fatalf("expected user id 42, got %d/%v", id, ok)
	}
}

func TestLogin_FailureLeavesSessionEmpty(t *testing.T) {
	sess := New(&stubAuth{loginErr: errors.New("nope")})

	if _, err := sess.Login(context.Background(), "alice", "bad"); err == nil {
		t.Fatalf("expected login error")
	}
	if _, ok := sess.Current(); ok {
		t.Fatalf("failed login must not install a user")
	}
}

func TestRegister_SignsIn(t *testing.T) {
	sess := New(&stubAuth{user: apiclient.User{ID: 7}})

	user, err := sess.Register(context.Background(), "bob", "pw", "Bob", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Name != "Bob" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if id, ok := sess.UserID(); !ok || id != 7 {
		t.Fatalf("register must sign the user in, got %d/%v", id, ok)
	}
}

func TestLogout_ClearsUserAndRunsHooks(t *testing.T) {
	sess := New(&stubAuth{user: apiclient.User{ID: 1}})

	fired := 0
	sess.OnLogout(func() { fired++ })
	sess.OnLogout(func() { fired++ })

	if _, err := sess.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	sess.Logout()
	if _, ok := sess.Current(); ok {
		t.Fatalf("logout must clear the user")
	}
	if fired != 2 {
		t.Fatalf("expected both hooks to fire, got %d", fired)
	}

	// Logging out again is harmless; hooks run every time.
	sess.Logout()
	if fired != 4 {
		t.Fatalf("expected hooks to fire again, got %d", fired)
	}
}
