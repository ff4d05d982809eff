package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/filebox/filebox/internal/client/api"
	"github.com/filebox/filebox/internal/client/config"
	"github.com/filebox/filebox/internal/client/persist"
	"github.com/filebox/filebox/internal/client/repositories/metadata"
	"github.com/filebox/filebox/internal/client/services"
	"github.com/filebox/filebox/internal/client/store"
	"github.com/filebox/filebox/internal/client/tokens"
	"github.com/filebox/filebox/internal/logging"
)

// App owns the wired client: store, services, and terminal I/O.
type App struct {
	config      *config.Config
	store       *store.Store
	authService *services.AuthService
	fileService *services.FileService
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := persist.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	adapter := persist.NewAdapter(metadata.NewSQLiteRepository(db), log)

	st := store.New()
	if snap, ok := adapter.Load(ctx); ok {
		st.Hydrate(snap)
	}
	adapter.Attach(st)

	// Late binding breaks the client<->store cycle: the provider existed
	// before the store and reads from it from now on.
	provider := tokens.NewProvider()
	provider.Bind(st.AccessToken)

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, provider, log)

	app := &App{
		config: cfg,
		store:  st,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	app.authService = services.NewAuthService(api.NewAuth(client), st, log)
	app.fileService = services.NewFileService(api.NewFiles(client), app.authService, st, app, log)

	return app, nil
}

// ToLogin implements services.Navigator: the CLI's "navigation" is dropping
// the user back to the anonymous prompt with an explanation.
func (a *App) ToLogin() {
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

// status renders the prompt segment: the user's email, or "anonymous".
func (a *App) status() string {
	if u := a.store.User(); u != nil {
		return u.Email
	}
	return "anonymous"
}

// Run rehydrates the session against the backend and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if res := a.authService.InitAuth(ctx); res.Success && a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.status())
		a.loadDashboard(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
