package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verilearn/verilearn/core/session"
	backendsvc "github.com/verilearn/verilearn/services/backend"
	"github.com/verilearn/verilearn/storage/credstore"
	"github.com/verilearn/verilearn/storage/history"
	testutil "github.com/verilearn/verilearn/tests"
	"github.com/verilearn/verilearn/tests/stubapi"
)

const draftText = "Binary search halves the interval on every comparison until the key is found."

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(stubapi.NewServer(&stubapi.Options{DisableReqLogs: true}))
	t.Cleanup(srv.Close)

	logger := testutil.Logger{TB: t}
	keeper := credstore.NewMem()
	var store *session.Store
	api := backendsvc.NewClient(srv.URL, func() string { return store.Token() })
	store = session.NewStore(keeper, api, logger)

	hist, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("opening history: %v", err)
	}
	t.Cleanup(func() { _ = hist.Close() })

	var out bytes.Buffer
	cli := &commandLine{
		store: store,
		api:   api,
		hist:  hist,
		log:   logger,
		out:   &out,
		in:    strings.NewReader(""),
	}

	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte("s3cretpwd!"), nil }
	t.Cleanup(func() { readPasswordFunc = orig })

	return cli, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_usage(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no subcommand", args: nil, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
		{name: "register: no flags", args: []string{"register"}, wantErr: errHelp},
		{name: "login: no email", args: []string{"login"}, wantErr: errHelp},
		{name: "submit: no file", args: []string{"submit"}, wantErr: errHelp},
		{name: "student: no id", args: []string{"student"}, wantErr: errHelp},
		{name: "submit: not signed in", args: []string{"submit", "-file", "x.txt"},
			wantErrStr: "not signed in; run `verilearn login` first"},
	}
	for _, tt := range tests {
		args := append([]string{"verilearn"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErrStr {
				t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
			}
		})
	}
}

func Test_commandLine_authFlow(t *testing.T) {
	cli, out := setup(t)

	if err := cli.run([]string{"verilearn", "register",
		"-name", "Alice Johnson", "-email", "alice@test.test", "-role", "student"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome, Alice Johnson") {
		t.Errorf("register output = %q", out.String())
	}

	out.Reset()
	if err := cli.run([]string{"verilearn", "whoami"}); err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out.String(), "alice@test.test") {
		t.Errorf("whoami output = %q", out.String())
	}

	out.Reset()
	if err := cli.run([]string{"verilearn", "logout"}); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	out.Reset()
	if err := cli.run([]string{"verilearn", "whoami"}); err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out.String(), "Not signed in") {
		t.Errorf("whoami after logout = %q", out.String())
	}

	// sign back in with the stored credentials
	out.Reset()
	if err := cli.run([]string{"verilearn", "login", "-email", "alice@test.test"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !strings.Contains(out.String(), "Signed in as Alice Johnson") {
		t.Errorf("login output = %q", out.String())
	}

	t.Run("wrong password", func(t *testing.T) {
		readPasswordFunc = func(int) ([]byte, error) { return []byte("nope-nope"), nil }
		if err := cli.run([]string{"verilearn", "login", "-email", "alice@test.test"}); err == nil {
			t.Error("login error = nil, want auth failure")
		}
	})

	t.Run("invalid email is caught locally", func(t *testing.T) {
		if err := cli.run([]string{"verilearn", "login", "-email", "not-an-email"}); err == nil {
			t.Error("login error = nil, want validation failure")
		}
	})
}

func Test_commandLine_submitAndResults(t *testing.T) {
	cli, out := setup(t)

	if err := cli.run([]string{"verilearn", "register",
		"-name", "Alice Johnson", "-email", "alice@test.test", "-role", "student"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "assignment.txt")
	if err := os.WriteFile(file, []byte(draftText), 0600); err != nil {
		t.Fatalf("writing assignment file: %v", err)
	}

	// one line per follow-up question
	cli.in = strings.NewReader("answer one\nanswer two\nanswer three\n")
	out.Reset()
	if err := cli.run([]string{"verilearn", "submit", "-file", file, "-subject", "Computers"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !strings.Contains(out.String(), "Assignment 1 submitted") {
		t.Errorf("submit output = %q", out.String())
	}

	// the submission was recorded locally
	entry, ok, err := cli.hist.Latest(context.Background())
	if err != nil || !ok || entry.AssignmentID != 1 {
		t.Fatalf("hist.Latest() = (%+v, %v, %v), want assignment 1", entry, ok, err)
	}

	// results without -id resolves through the local history
	out.Reset()
	if err := cli.run([]string{"verilearn", "results"}); err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if !strings.Contains(out.String(), "Results for assignment 1") {
		t.Errorf("results output = %q", out.String())
	}
	if !strings.Contains(out.String(), "Final score:") {
		t.Errorf("results output = %q", out.String())
	}

	t.Run("unknown assignment renders sample data", func(t *testing.T) {
		out.Reset()
		if err := cli.run([]string{"verilearn", "results", "-id", "999"}); err != nil {
			t.Fatalf("results failed: %v", err)
		}
		if !strings.Contains(out.String(), "showing sample data") {
			t.Errorf("results output = %q", out.String())
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		out.Reset()
		if err := cli.run([]string{"verilearn", "dashboard"}); err != nil {
			t.Fatalf("dashboard failed: %v", err)
		}
		if !strings.Contains(out.String(), "Assignments:     1") {
			t.Errorf("dashboard output = %q", out.String())
		}
	})

	t.Run("teacher views are role-gated", func(t *testing.T) {
		if err := cli.run([]string{"verilearn", "class"}); err == nil {
			t.Error("class as student: error = nil, want role gate")
		}
		if err := cli.run([]string{"verilearn", "students"}); err == nil {
			t.Error("students as student: error = nil, want role gate")
		}
	})
}

func Test_commandLine_teacherViews(t *testing.T) {
	cli, out := setup(t)

	if err := cli.run([]string{"verilearn", "register",
		"-name", "Prof. Moriarty", "-email", "prof@test.test", "-role", "teacher"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	out.Reset()
	if err := cli.run([]string{"verilearn", "class"}); err != nil {
		t.Fatalf("class failed: %v", err)
	}
	if !strings.Contains(out.String(), "Class average") {
		t.Errorf("class output = %q", out.String())
	}

	out.Reset()
	if err := cli.run([]string{"verilearn", "students"}); err != nil {
		t.Fatalf("students failed: %v", err)
	}
	// an empty class shows the sample roster
	if !strings.Contains(out.String(), "Alice Johnson") {
		t.Errorf("students output = %q", out.String())
	}

	out.Reset()
	if err := cli.run([]string{"verilearn", "student", "-id", "1"}); err != nil {
		t.Fatalf("student failed: %v", err)
	}
	if !strings.Contains(out.String(), "Suggestions") {
		t.Errorf("student output = %q", out.String())
	}

	t.Run("student views are role-gated", func(t *testing.T) {
		if err := cli.run([]string{"verilearn", "dashboard"}); err == nil {
			t.Error("dashboard as teacher: error = nil, want role gate")
		}
	})
}
