package main

import (
	"context"
	"fmt"

	"github.com/verilearn/verilearn/core/session"
)

func (cli *commandLine) register(ctx context.Context, name, email, pwd, role string) error {
	reg := session.Registration{Name: name, Email: email, Password: pwd, Role: session.Role(role)}
	if err := reg.Validate(); err != nil {
		return err
	}
	sess, err := cli.api.Register(ctx, reg)
	if err != nil {
		return err
	}
	if err := cli.store.Login(sess.Token, sess.User); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Welcome, %s! Registered as %s.\n", sess.User.Name, sess.User.Role)
	return nil
}

func (cli *commandLine) login(ctx context.Context, email, pwd string) error {
	creds := session.Credentials{Email: email, Password: pwd}
	if err := creds.Validate(); err != nil {
		return err
	}
	sess, err := cli.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := cli.store.Login(sess.Token, sess.User); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Signed in as %s <%s> (%s).\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	cli.store.Initialize(ctx)
	cli.store.Logout()
	fmt.Fprintln(cli.out, "Signed out.")
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	cli.store.Initialize(ctx)
	state := cli.store.State()
	if state.Session == nil {
		fmt.Fprintln(cli.out, "Not signed in.")
		return nil
	}
	usr := state.Session.User
	fmt.Fprintf(cli.out, "%s <%s> (%s, id %d)\n", usr.Name, usr.Email, usr.Role, usr.ID)
	return nil
}
