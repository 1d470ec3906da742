package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gymkeeper/internal/accounts"
)

// Dashboard shows the logged-in member's profile.
func (a *App) Dashboard(ctx context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		a.showAlert(alertDanger, MsgLoginRequired)
		return nil
	}
	a.renderPage(profileLines(u)...)
	return nil
}

func profileLines(u *accounts.User) []string {
	lines := []string{
		"Member #" + strconv.FormatInt(u.ID, 10),
		"Full name:    " + u.FullName,
		"Email:        " + u.Email,
		"Phone:        " + u.Phone,
		"CCCD:         " + u.NationalID,
		"Member since: " + FormatDate(u.CreatedAt.Local()),
	}
	keys := make([]string, 0, len(u.Extra))
	for k := range u.Extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, u.Extra[k]))
	}
	return lines
}

// Profile edits the logged-in member. Blank answers keep the current value.
func (a *App) Profile(ctx context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		a.showAlert(alertDanger, MsgLoginRequired)
		return nil
	}
	log := a.opLogger("profile")

	var patch accounts.Patch
	fields := []struct {
		dst     **string
		prompt  string
		current string
	}{
		{&patch.FullName, "Full name", u.FullName},
		{&patch.Email, "Email", u.Email},
		{&patch.Phone, "Phone", u.Phone},
		{&patch.NationalID, "National ID (CCCD)", u.NationalID},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (blank to keep)", f.prompt, f.current), os.Stdout)
		if err != nil {
			log.Error(ctx, "reading profile form", "error", err)
			return err
		}
		if v != "" {
			*f.dst = &v
		}
	}

	var form profileForm
	if patch.Email != nil {
		form.Email = *patch.Email
	}

	var err error
	if form.Password, err = a.readSecret("New password (blank to keep)"); err != nil {
		log.Error(ctx, "reading password", "error", err)
		return err
	}
	if form.Password != "" {
		if form.ConfirmPassword, err = a.readSecret("Confirm new password"); err != nil {
			log.Error(ctx, "reading password confirmation", "error", err)
			return err
		}
		patch.Password = &form.Password
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
	patch.Extra = extra

	if msg := a.validateForm(form); msg != "" {
		a.showAlert(alertDanger, msg)
		return nil
	}

	a.report(ctx, log, a.accounts.UpdateProfile(ctx, u.ID, patch))
	return nil
}

// Users lists every stored member in registration order.
func (a *App) Users(context.Context) error {
	users := a.accounts.AllUsers()
	if len(users) == 0 {
		a.renderPage("No members yet.")
		return nil
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFULL NAME\tEMAIL\tPHONE\tJOINED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Phone, FormatDate(u.CreatedAt.Local()))
	}
	_ = tw.Flush()

	a.renderPage(strings.Split(strings.TrimRight(b.String(), "\n"), "\n")...)
	return nil
}

// Delete removes the member whose id is args[0].
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: delete <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: delete <id>")
		return nil
	}

	log := a.opLogger("delete")
	res := a.accounts.DeleteUser(ctx, id)
	a.report(ctx, log, res)
	return nil
}

// Reset wipes every account and the session after an explicit confirmation.
func (a *App) Reset(ctx context.Context) error {
	log := a.opLogger("reset")

	answer, err := getSimpleText(a.reader, "Type 'yes' to erase all members and the current session", os.Stdout)
	if err != nil {
		log.Error(ctx, "reading confirmation", "error", err)
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.showAlert(alertInfo, "Reset cancelled.")
		return nil
	}

	a.report(ctx, log, a.accounts.ClearAllData(ctx))
	return nil
}

// Slide controls the carousel: jump to slide n (1-based), pause or resume.
func (a *App) Slide(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: slide <n|pause|resume>")
		return nil
	}

	switch args[0] {
	case "pause":
		a.slider.Pause()
	case "resume":
		a.slider.Resume()
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil || !a.slider.GoTo(n) {
			a.showAlert(alertDanger, fmt.Sprintf("Slide must be between 1 and %d!", a.slider.Len()))
			return nil
		}
	}
	return a.Home(ctx)
}
