package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/filebox/filebox/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email, a password and its confirmation,
// and attempts to create an account via the AuthService.
//
// On success it prints "Success!" and returns nil. Both password byte slices
// are securely wiped before returning. Failures are printed and returned as
// an error so the caller can tell the command did not complete.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if res := a.authService.Register(ctx, email, string(password), string(confirm)); !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return errors.New(res.Error)
	}

	fmt.Fprintln(a.out, "Success! You are now logged in.")
	a.loadDashboard(ctx)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the dashboard data (account + file listing) is loaded.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if res := a.authService.Login(ctx, email, string(password)); !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return errors.New(res.Error)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", a.status())
	a.loadDashboard(ctx)
	return nil
}

// Logout drops the local session. Nothing is sent to the server.
func (a *App) Logout(ctx context.Context) error {
	a.fileService.DestroyDashboard()
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI refreshes the account from the server and prints it.
func (a *App) WhoAmI(ctx context.Context) error {
	if res := a.authService.FetchCurrentUser(ctx); !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return errors.New(res.Error)
	}
	u := a.store.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %s)\n", u.Email, u.ID)
	return nil
}

// Health pings the server and reports whether it is reachable.
func (a *App) Health(ctx context.Context) error {
	if res := a.authService.Health(ctx); !res.Success {
		fmt.Fprintf(a.out, "Server is unavailable: %s\n", res.Error)
		return errors.New(res.Error)
	}
	fmt.Fprintln(a.out, "Server is up.")
	return nil
}

func (a *App) loadDashboard(ctx context.Context) {
	if res := a.fileService.InitDashboard(ctx); !res.Success {
		fmt.Fprintf(a.out, "Could not load dashboard: %s\n", res.Error)
	}
}
