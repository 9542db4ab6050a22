package cli

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/dmitrijs2005/codecrafted/internal/client/catalog"
	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for the signup form and submits it to the session store.
// The outcome is printed by the session listener; validation problems,
// which never change the session, are printed here.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Account type (student/teacher)", a.out)
	if err != nil {
		return err
	}

	err = a.session.Signup(ctx, models.SignupProfile{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     models.Role(role),
	})
	a.report(err)
	return err
}

// Login prompts for credentials and authenticates through the session store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.session.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	a.report(err)
	return err
}

// Logout ends the session. A failed remote logout is reported, the local
// session is anonymous either way.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	a.report(err)
	return err
}

// report prints failures that no store snapshot shows. Auth and fetch
// failures are rendered from the snapshots, superseded loads are silent.
func (a *App) report(err error) {
	var verr *models.ValidationError

	switch {
	case err == nil,
		errors.Is(err, session.ErrAuthFailed),
		errors.Is(err, catalog.ErrFetchFailed),
		errors.Is(err, catalog.ErrSuperseded):
		return
	case errors.As(err, &verr):
		for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
			a.println("  - " + verr.Fields[field])
		}
	case errors.Is(err, session.ErrAuthInProgress):
		a.println("Please wait, another sign-in is in progress.")
	case errors.Is(err, session.ErrAlreadyAuthenticated):
		a.println("You are already signed in. Log out first.")
	case errors.Is(err, session.ErrLogoutFailed):
		a.println("Signed out locally, but the server could not be reached.")
	default:
		a.println("Error:", err)
	}
}
