package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/gymkeeper/internal/accounts"
	"github.com/dmitrijs2005/gymkeeper/internal/config"
	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/dmitrijs2005/gymkeeper/internal/slider"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AccountService is the slice of accounts.Service the front end drives.
type AccountService interface {
	Register(ctx context.Context, reg accounts.Registration) accounts.Result
	Login(ctx context.Context, email, password string) accounts.Result
	Logout(ctx context.Context) accounts.Result
	CurrentUser() *accounts.User
	IsLoggedIn() bool
	UpdateProfile(ctx context.Context, id int64, patch accounts.Patch) accounts.Result
	AllUsers() []accounts.User
	DeleteUser(ctx context.Context, id int64) accounts.Result
	ClearAllData(ctx context.Context) accounts.Result
}

type App struct {
	config   *config.Config
	accounts AccountService
	log      logging.Logger
	reader   *bufio.Reader
	slider   *slider.Slider
	alerts   *alertBox
	validate *validator.Validate
}

// NewApp builds the front end over svc, reading commands and form input
// from in.
func NewApp(c *config.Config, svc AccountService, log logging.Logger, in io.Reader) *App {
	a := &App{
		config:   c,
		accounts: svc,
		log:      log,
		reader:   bufio.NewReader(in),
		alerts:   newAlertBox(c.AlertTimeout),
		validate: newValidator(),
	}
	a.slider = slider.New(promoSlides(), c.SlideInterval, func(index int, _ string) {
		a.log.Debug(context.Background(), "carousel advanced", "slide", index+1)
	})
	return a
}

// Run renders the home page and serves commands until the user exits or
// input ends. The carousel runs alongside and stops with the loop.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.slider.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		a.log.Info(gctx, "front end started", "logged_in", a.accounts.IsLoggedIn())
		_ = a.Home(gctx)
		runREPL(gctx, a, a.getStatus, a.reader)
		return nil
	})
	return g.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsLoggedIn()
}

// opLogger tags every log line of one command with a fresh correlation id.
func (a *App) opLogger(op string) logging.Logger {
	return a.log.With("op_id", uuid.NewString(), "op", op)
}

// report turns a service result into an alert and logs failures.
func (a *App) report(ctx context.Context, log logging.Logger, res accounts.Result) {
	if res.Success {
		a.showAlert(alertSuccess, res.Message)
		return
	}
	log.Info(ctx, "operation rejected", "message", res.Message, "error", res.Err)
	a.showAlert(alertDanger, res.Message)
}
