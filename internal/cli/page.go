package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
)

const footer = "© 2025 " + common.AppName

// membership plans advertised on the carousel, in VND per month.
var plans = []struct {
	name  string
	price int64
}{
	{"Basic", 500000},
	{"Premium", 900000},
	{"Personal training", 2500000},
}

func promoSlides() []string {
	slides := make([]string, 0, len(plans)+1)
	slides = append(slides, "Welcome to "+common.AppName+": open 5:00 to 22:00 every day")
	for _, p := range plans {
		slides = append(slides, fmt.Sprintf("%s membership from %s / month", p.name, FormatCurrency(p.price)))
	}
	return slides
}

// navbar reflects the login state: Home, Dashboard and Logout for members,
// Home, Login and Register for visitors.
func navbar(loggedIn bool) string {
	links := []string{"Home", "Login", "Register"}
	if loggedIn {
		links = []string{"Home", "Dashboard", "Logout"}
	}
	return common.AppName + " | " + strings.Join(links, " | ")
}

func (a *App) getStatus() string {
	u := a.accounts.CurrentUser()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

// renderPage frames body with the shared chrome and any live alert.
func (a *App) renderPage(body ...string) {
	printlnFn(navbar(a.isLoggedIn()))
	if banner := a.alerts.active(); banner != "" {
		printlnFn(banner)
	}
	for _, line := range body {
		printlnFn(line)
	}
	printlnFn(footer)
}

// Home draws the landing page with the current carousel slide.
func (a *App) Home(ctx context.Context) error {
	index, slide := a.slider.Current()
	marker := ""
	if a.slider.Paused() {
		marker = " (paused)"
	}
	body := []string{fmt.Sprintf("[%d/%d]%s %s", index+1, a.slider.Len(), marker, slide)}
	if u := a.accounts.CurrentUser(); u != nil {
		body = append(body, "Welcome back, "+u.FullName+"!")
	}
	a.renderPage(body...)
	return nil
}
