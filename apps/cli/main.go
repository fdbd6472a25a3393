// Command verilearn is the terminal client: it authenticates against the
// scoring backend, walks assignment submissions through the follow-up
// flow, and renders result and analytics views.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/session"
	backendsvc "github.com/verilearn/verilearn/services/backend"
	logsvc "github.com/verilearn/verilearn/services/logger"
	"github.com/verilearn/verilearn/storage/credstore"
	"github.com/verilearn/verilearn/storage/history"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stderr, "", log.LstdFlags)
	var logger core.Logger = logsvc.NewConsoleLogger(std)
	if token := core.Conf.GetString("rollbarToken"); token != "" {
		logger = logsvc.NewRollbarLogger(std, core.Conf.GetString("env"))
	}
	logger.Enable(true)

	stateDir := core.Conf.GetString("stateDir")
	keeper, err := credstore.NewFile(stateDir)
	if err != nil {
		std.Fatalf("error: opening state dir %s: %s", stateDir, err)
	}

	var store *session.Store
	api := backendsvc.NewClient(core.Conf.GetString("apiBaseURL"), func() string { return store.Token() })
	store = session.NewStore(keeper, api, logger)

	// local submission history is a convenience; run without it on failure
	hist, err := history.Open(filepath.Join(stateDir, core.Conf.GetString("historyDBName")))
	if err != nil {
		logger.Warn("opening submission history", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	cli := commandLine{
		store: store,
		api:   api,
		hist:  hist,
		log:   logger,
		out:   os.Stdout,
		in:    os.Stdin,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
