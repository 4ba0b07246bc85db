// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// Usage lists the commands understood by [App.Run].
const Usage = `usage: client [flags] <command> [args]

commands:
  register -username U -password P -name N
  login -username U -password P
  current
  update [-name N] [-password P]
  logout
  contacts create -first-name F [-last-name L] [-email E] [-phone P]
  contacts get ID
  contacts update ID -first-name F [-last-name L] [-email E] [-phone P]
  contacts delete ID
  contacts search [-name N] [-email E] [-phone P] [-page N]
  version
  build-info`

// App runs a single client command against the API.
type App struct {
	adapter adapter.ContactKeeperAdapter
	tokens  *TokenFile
	out     io.Writer
	logger  *logger.Logger
}

// NewApp constructs an [App]. Command output is written to out.
func NewApp(adapter adapter.ContactKeeperAdapter, tokens *TokenFile, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: adapter,
		tokens:  tokens,
		out:     out,
		logger:  logger,
	}
}

// Run loads the saved token and executes the command in args.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		a.adapter.SetToken(token)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", cmd).Msg("running command")

	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "current":
		return a.current(ctx)
	case "update":
		return a.update(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "contacts":
		return a.contacts(ctx, rest)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := newFlagSet("register")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Name, "name", "", "display name")
	if err := parse(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := parse(fs, args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(token.SignedString); err != nil {
		return err
	}
	return a.print(token)
}

func (a *App) current(ctx context.Context) error {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) update(ctx context.Context, args []string) error {
	var name, password string
	fs := newFlagSet("update")
	fs.StringVar(&name, "name", "", "new display name")
	fs.StringVar(&password, "password", "", "new password")
	if err := parse(fs, args); err != nil {
		return err
	}

	var req models.UpdateUserRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = &name
		case "password":
			req.Password = &password
		}
	})
	if req.Name == nil && req.Password == nil {
		return fmt.Errorf("%w: update needs -name or -password", ErrUsage)
	}

	user, err := a.adapter.UpdateCurrentUser(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

// logout forgets the local token even when the server call fails.
func (a *App) logout(ctx context.Context) error {
	err := a.adapter.Logout(ctx)
	if clearErr := a.tokens.Clear(); clearErr != nil {
		err = errors.Join(err, clearErr)
	}
	if err != nil {
		return err
	}
	return a.print(models.OK)
}

func (a *App) contacts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: contacts needs a subcommand", ErrUsage)
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "create":
		return a.createContact(ctx, rest)
	case "get":
		return a.getContact(ctx, rest)
	case "update":
		return a.updateContact(ctx, rest)
	case "delete":
		return a.deleteContact(ctx, rest)
	case "search":
		return a.searchContacts(ctx, rest)
	default:
		return fmt.Errorf("%w: contacts %q", ErrUnknownCommand, sub)
	}
}

func (a *App) createContact(ctx context.Context, args []string) error {
	contact, err := parseContact("contacts create", args)
	if err != nil {
		return err
	}

	created, err := a.adapter.CreateContact(ctx, contact)
	if err != nil {
		return err
	}
	return a.print(created)
}

func (a *App) getContact(ctx context.Context, args []string) error {
	id, _, err := parseContactID(args)
	if err != nil {
		return err
	}

	contact, err := a.adapter.GetContact(ctx, id)
	if err != nil {
		return err
	}
	return a.print(contact)
}

func (a *App) updateContact(ctx context.Context, args []string) error {
	id, rest, err := parseContactID(args)
	if err != nil {
		return err
	}

	contact, err := parseContact("contacts update", rest)
	if err != nil {
		return err
	}
	contact.ID = id

	updated, err := a.adapter.UpdateContact(ctx, contact)
	if err != nil {
		return err
	}
	return a.print(updated)
}

func (a *App) deleteContact(ctx context.Context, args []string) error {
	id, _, err := parseContactID(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteContact(ctx, id); err != nil {
		return err
	}
	return a.print(models.OK)
}

func (a *App) searchContacts(ctx context.Context, args []string) error {
	var search models.ContactSearch
	fs := newFlagSet("contacts search")
	fs.StringVar(&search.Name, "name", "", "first or last name fragment")
	fs.StringVar(&search.Email, "email", "", "email fragment")
	fs.StringVar(&search.Phone, "phone", "", "phone fragment")
	fs.IntVar(&search.Page, "page", 1, "page number")
	if err := parse(fs, args); err != nil {
		return err
	}

	page, err := a.adapter.SearchContacts(ctx, search)
	if err != nil {
		return err
	}
	return a.print(models.Response{Data: page.Contacts, Paging: &page.Paging})
}

func (a *App) version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", ErrUsage, fs.Name(), fs.Arg(0))
	}
	return nil
}

// parseContact reads contact fields from flags. Optional fields left unset
// stay nil.
func parseContact(name string, args []string) (models.Contact, error) {
	var contact models.Contact
	var lastName, email, phone string

	fs := newFlagSet(name)
	fs.StringVar(&contact.FirstName, "first-name", "", "first name")
	fs.StringVar(&lastName, "last-name", "", "last name")
	fs.StringVar(&email, "email", "", "email")
	fs.StringVar(&phone, "phone", "", "phone")
	if err := parse(fs, args); err != nil {
		return models.Contact{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "last-name":
			contact.LastName = &lastName
		case "email":
			contact.Email = &email
		case "phone":
			contact.Phone = &phone
		}
	})

	return contact, nil
}

func parseContactID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: contact id is required", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, nil, fmt.Errorf("%w: invalid contact id %q", ErrUsage, args[0])
	}

	return id, args[1:], nil
}
