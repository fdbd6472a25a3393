package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/navigation"
	"github.com/verilearn/verilearn/core/session"
	backendsvc "github.com/verilearn/verilearn/services/backend"
	"github.com/verilearn/verilearn/storage/history"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store *session.Store
	api   *backendsvc.Client
	hist  *history.Store // nil when the local history could not open
	log   core.Logger
	out   io.Writer
	in    io.Reader
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  register -name NAME -email EMAIL -role student|teacher - create an account (password prompted)")
	fmt.Fprintln(cli.out, "  login -email EMAIL                                     - sign in (password prompted)")
	fmt.Fprintln(cli.out, "  logout                                                 - sign out and clear the stored session")
	fmt.Fprintln(cli.out, "  whoami                                                 - show the signed-in account")
	fmt.Fprintln(cli.out, "  submit -file FILE [-subject SUBJECT]                   - submit an assignment and answer follow-ups")
	fmt.Fprintln(cli.out, "  results [-id ID]                                       - show assignment results (latest when -id omitted)")
	fmt.Fprintln(cli.out, "  dashboard                                              - show the student dashboard")
	fmt.Fprintln(cli.out, "  class                                                  - show class-wide analytics (teacher)")
	fmt.Fprintln(cli.out, "  students                                               - list the student roster (teacher)")
	fmt.Fprintln(cli.out, "  student -id ID                                         - show one student's analytics (teacher)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	registerName := registerCmd.String("name", "", "Full name.")
	registerEmail := registerCmd.String("email", "", "Email address.")
	registerRole := registerCmd.String("role", "student", "Account role: student or teacher.")

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "Email address. The password will be prompted next.")

	submitCmd := flag.NewFlagSet("submit", flag.ExitOnError)
	submitFile := submitCmd.String("file", "", "File holding the assignment text.")
	submitSubject := submitCmd.String("subject", "", "Assignment subject.")

	resultsCmd := flag.NewFlagSet("results", flag.ExitOnError)
	resultsID := resultsCmd.Int("id", 0, "Assignment id. Defaults to the most recent local submission.")

	studentCmd := flag.NewFlagSet("student", flag.ExitOnError)
	studentID := studentCmd.Int("id", 0, "Student id.")

	ctx := context.Background()

	switch args[1] {
	case "register":
		if err := registerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *registerName == "" || *registerEmail == "" {
			registerCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.register(ctx, *registerName, *registerEmail, pwd, *registerRole)
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.login(ctx, *loginEmail, pwd)
	case "logout":
		return cli.logout(ctx)
	case "whoami":
		return cli.whoami(ctx)
	case "submit":
		if err := submitCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *submitFile == "" {
			submitCmd.Usage()
			return errHelp
		}
		return cli.submit(ctx, *submitFile, *submitSubject)
	case "results":
		if err := resultsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.results(ctx, *resultsID)
	case "dashboard":
		return cli.dashboard(ctx)
	case "class":
		return cli.classAnalytics(ctx)
	case "students":
		return cli.students(ctx)
	case "student":
		if err := studentCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *studentID == 0 {
			studentCmd.Usage()
			return errHelp
		}
		return cli.studentAnalytics(ctx, *studentID)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

// ensure restores the session and gates the command on the route it maps to.
func (cli *commandLine) ensure(ctx context.Context, route navigation.Route) error {
	cli.store.Initialize(ctx)
	decision := navigation.Decide(cli.store.State(), navigation.RequiredRole(route))
	switch decision.Verdict {
	case navigation.Grant:
		return nil
	case navigation.Redirect:
		if decision.Target == navigation.RouteLogin {
			return errors.New("not signed in; run `verilearn login` first")
		}
		return errors.New("not available for your role (see `verilearn whoami`)")
	default:
		return errors.New("session is still loading")
	}
}
