package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/stores"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

var errLoggedIn = errors.New("already logged in, log out first")

// Register prompts for the new account's fields and creates it. The new
// user is not logged in.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter username", &req.Username},
		{"Enter email", &req.Email},
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	req.Password = password

	created := a.session.Register(ctx, req)
	if msg := a.session.Snapshot().Error; msg != "" {
		a.session.ClearError()
		return errors.New(msg)
	}
	fmt.Fprintf(a.out, "Account %q created (id %d). Use 'login' to sign in.\n", created.Username, created.ID)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return errLoggedIn
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.session.Login(ctx, username, password)

	sess := a.session.Snapshot()
	if sess.Error != "" {
		a.session.ClearError()
		return fmt.Errorf("login failed: %s", sess.Error)
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", sess.User.DisplayName())
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return stores.ErrNotAuthenticated
	}
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.session.Snapshot()
	if !sess.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u := sess.User
	fmt.Fprintf(a.out, "%s (%s) #%d\n", u.DisplayName(), u.Username, u.ID)
	if u.Email != "" {
		fmt.Fprintf(a.out, "  email: %s\n", u.Email)
	}
	if u.Phone != "" {
		fmt.Fprintf(a.out, "  phone: %s\n", u.Phone)
	}
	if u.Bio != "" {
		fmt.Fprintf(a.out, "  bio:   %s\n", u.Bio)
	}
	if !sess.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "  session expires %s\n", sess.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

// Refresh reloads the user profile from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.RefreshUser(ctx); err != nil {
		return err
	}
	if msg := a.session.Snapshot().Error; msg != "" {
		a.session.ClearError()
		return errors.New(msg)
	}
	return a.WhoAmI(ctx)
}

// Profile edits the local profile. Empty answers keep the current values.
func (a *App) Profile(ctx context.Context) error {
	sess := a.session.Snapshot()
	if !sess.IsAuthenticated() {
		return stores.ErrNotAuthenticated
	}
	u := sess.User

	var p models.ProfileUpdate
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"First name", u.FirstName, &p.FirstName},
		{"Last name", u.LastName, &p.LastName},
		{"Email", u.Email, &p.Email},
		{"Phone", u.Phone, &p.Phone},
	}
	for _, f := range fields {
		v, err := GetOptionalText(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	bio, err := getMultiline(a.reader, "Bio (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if bio != "" {
		p.Bio = &bio
	}

	if err := a.session.UpdateProfile(ctx, p); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
