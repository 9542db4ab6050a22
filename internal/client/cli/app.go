package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/client/catalog"
	"github.com/dmitrijs2005/codecrafted/internal/client/client"
	"github.com/dmitrijs2005/codecrafted/internal/client/config"
	"github.com/dmitrijs2005/codecrafted/internal/client/session"
	"github.com/dmitrijs2005/codecrafted/internal/logging"
	"github.com/dmitrijs2005/codecrafted/internal/seed"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	backend client.Client
	session *session.Store
	catalog *catalog.Engine
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// lastSession is only touched by the session listener.
	lastSession session.Status

	mu   sync.Mutex
	mode Mode
}

// newBackend picks the data source named by the configuration.
func newBackend(c *config.Config) (client.Client, error) {
	switch c.DataSource {
	case config.DataSourceMock:
		return client.NewMockClient(c.MockLatency, seed.Courses()), nil
	case config.DataSourceGRPC:
		return client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	default:
		return nil, fmt.Errorf("unknown data source %q", c.DataSource)
	}
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	backend, err := newBackend(c)
	if err != nil {
		return nil, err
	}
	return newApp(c, backend, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, backend client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	defaults := catalog.Criteria{MinPrice: c.MinPrice, MaxPrice: c.MaxPrice}
	return &App{
		config:  c,
		backend: backend,
		session: session.NewStore(backend, log),
		catalog: catalog.NewEngine(backend, log, catalog.Config{PopularLimit: c.PopularLimit, Defaults: &defaults}),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.session.State().LoggedIn()
}

// Run renders store changes, loads the catalog and serves the REPL until
// the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.backend.Close()

	defer a.session.Subscribe(a.onSession)()
	defer a.catalog.Subscribe(a.onCatalog)()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.println("Welcome to CodeCrafted (type 'help' for commands)")
	_ = a.Courses(ctx, nil)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.backend.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done and records whether it answered.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if st := a.session.State(); st.User != nil {
		s = st.User.Email + " "
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) onSession(st session.State) {
	prev := a.lastSession
	a.lastSession = st.Status
	if line := renderSession(prev, st); line != "" {
		a.println(line)
	}
}

func (a *App) onCatalog(s catalog.Snapshot) {
	a.println(renderCatalog(s))
}
