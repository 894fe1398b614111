package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prismai/prism-cli/internal/client/api"
	"github.com/prismai/prism-cli/internal/client/config"
	"github.com/prismai/prism-cli/internal/client/generate"
	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/session"
	"github.com/prismai/prism-cli/internal/client/tokens"
	"github.com/prismai/prism-cli/internal/client/views"
	"github.com/prismai/prism-cli/internal/logging"
)

// Mode reflects the last health-check result. It is advisory only: requests
// are attempted regardless of the current mode.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionIface is the slice of the session manager the CLI commands use.
type sessionIface interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	Restore(ctx context.Context) error
	ObserveError(ctx context.Context, err error) error
	IsAuthenticated() bool
	IsAdmin() bool
	User() *models.User
	Usage() *models.Usage
}

type blogIface interface {
	Submit(ctx context.Context, req models.BlogRequest) (string, error)
	Last() (string, bool)
}

type videoIface interface {
	Submit(ctx context.Context, req models.VideoScriptRequest) (string, error)
	Last() (string, bool)
}

type imageIface interface {
	Submit(ctx context.Context, req models.ImageRequest) (*models.ImageResult, error)
	Last() ([]models.Image, string, bool)
}

// App wires the API client, session manager, router and generation
// controllers behind the REPL commands.
type App struct {
	config  *config.Config
	api     api.Client
	session sessionIface
	router  *views.Router
	blog    blogIface
	video   videoIface
	image   imageIface
	log     logging.Logger
	reader  *bufio.Reader

	// mode is written by the online-status watcher goroutine and read by
	// the REPL prompt, hence the lock.
	modeMu sync.Mutex
	mode   Mode

	db         *sql.DB
	downloader *http.Client
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, log)
	sess := session.NewManager(apiClient, tokens.NewSQLiteStore(db), log)

	app := &App{
		config:     c,
		api:        apiClient,
		session:    sess,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		db:         db,
		downloader: &http.Client{Timeout: 30 * time.Second},
	}
	app.router = views.NewRouter(sess, app.toast)

	overlay := &textOverlay{}
	app.blog = generate.NewBlogController(apiClient, sess, overlay, log)
	app.video = generate.NewVideoController(apiClient, sess, overlay, log)
	app.image = generate.NewImageController(apiClient, sess, overlay, log)

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.session.IsAuthenticated() {
		a.router.Switch(views.TabBlog)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.HealthCheckInterval)

	printlnFn("Welcome to Prism CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " "
	}
	if mode := a.currentMode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if !changed {
		return
	}
	if mode == ModeOffline {
		a.toast("Service offline: cannot reach server")
	} else {
		a.toast("Back online")
	}
}

// StartOnlineStatusWatcher polls the health endpoint on the given interval
// and flips Mode when the answer changes. The first tick fires after one full
// interval; until then Mode stays empty and the status prompt omits it.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.api.Ping(ctx); err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}
		case <-ctx.Done():
			return
		}
	}
}
