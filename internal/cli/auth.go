package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/gymkeeper/internal/accounts"
	"github.com/dmitrijs2005/gymkeeper/internal/common"
)

// getSimpleText, getPassword and getMetadata are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMetadata   = GetMetadata
)

// readSecret reads a password and returns it as a string, wiping the raw bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register walks the member through the registration form, validates it and
// creates the account. The confirmation password is checked and dropped; it
// never reaches the store. Any extra name=value details are kept with the
// account.
func (a *App) Register(ctx context.Context) error {
	log := a.opLogger("register")

	var form registerForm
	prompts := []struct {
		dst    *string
		prompt string
	}{
		{&form.FullName, "Full name"},
		{&form.Email, "Email"},
		{&form.Phone, "Phone"},
		{&form.NationalID, "National ID (CCCD)"},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			log.Error(ctx, "reading registration form", "error", err)
			return err
		}
		*p.dst = v
	}

	var err error
	if form.Password, err = a.readSecret("Password"); err != nil {
		log.Error(ctx, "reading password", "error", err)
		return err
	}
	if form.ConfirmPassword, err = a.readSecret("Confirm password"); err != nil {
		log.Error(ctx, "reading password confirmation", "error", err)
		return err
	}

	lines, err := getMetadata(a.reader, os.Stdout)
	if err != nil {
		log.Error(ctx, "reading extra details", "error", err)
		return err
	}
	extra, rejected := parseMetadata(lines)
	for _, line := range rejected {
		printlnFn("Skipped malformed detail:", line)
	}

	if msg := a.validateForm(form); msg != "" {
		a.showAlert(alertDanger, msg)
		return nil
	}

	res := a.accounts.Register(ctx, accounts.Registration{
		FullName:   form.FullName,
		Email:      form.Email,
		Phone:      form.Phone,
		NationalID: form.NationalID,
		Password:   form.Password,
		Extra:      extra,
	})
	a.report(ctx, log, res)
	if res.Success {
		printlnFn("You can now log in with your email and password.")
	}
	return nil
}

// Login prompts for credentials and opens a session on success.
func (a *App) Login(ctx context.Context) error {
	log := a.opLogger("login")

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		log.Error(ctx, "reading email", "error", err)
		return err
	}
	password, err := a.readSecret("Password")
	if err != nil {
		log.Error(ctx, "reading password", "error", err)
		return err
	}

	if msg := a.validateForm(loginForm{Email: email, Password: password}); msg != "" {
		a.showAlert(alertDanger, msg)
		return nil
	}

	res := a.accounts.Login(ctx, email, password)
	a.report(ctx, log, res)
	if res.Success {
		return a.Home(ctx)
	}
	return nil
}

// Logout ends the session. Logging out while logged out is harmless.
func (a *App) Logout(ctx context.Context) error {
	res := a.accounts.Logout(ctx)
	a.report(ctx, a.opLogger("logout"), res)
	if res.Success {
		return a.Home(ctx)
	}
	return nil
}

// Forgot is a placeholder for password recovery.
func (a *App) Forgot(context.Context) error {
	a.showAlert(alertInfo, MsgForgotPassword)
	return nil
}
