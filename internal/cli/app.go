// Package cli is the terminal renderer of the portfolio: it draws the
// current view as text, reads user intents from stdin, and forwards them to
// the navigation controller and the store.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"strings"
	"time"

	"github.com/raghul07102002/holofolio/internal/config"
	"github.com/raghul07102002/holofolio/internal/logging"
	"github.com/raghul07102002/holofolio/internal/nav"
	"github.com/raghul07102002/holofolio/internal/notify"
	"github.com/raghul07102002/holofolio/internal/picker"
	"github.com/raghul07102002/holofolio/internal/storage"
	"github.com/raghul07102002/holofolio/internal/store"
)

type App struct {
	cfg    *config.Config
	store  *store.Store
	nav    *nav.Controller
	picker picker.Picker
	sink   notify.Sink
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sink := notify.WriterSink{W: os.Stdout}

	s, err := store.New(ctx, storage.NewSQLiteStorage(db), cfg.AdminSecret, log, sink)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		store:  s,
		nav:    nav.NewController(),
		sink:   sink,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.picker = &picker.FS{SelectPaths: a.selectPaths}

	return a, nil
}

// selectPaths is the CLI's stand-in for a file dialog: it asks for
// space-separated paths matching the accept filter. An empty line cancels.
func (a *App) selectPaths(ctx context.Context, req picker.Request) ([]string, error) {
	prompt := "Enter file path"
	if req.Multiple {
		prompt = "Enter file paths (space separated)"
	}
	if len(req.Accept) > 0 {
		prompt += " [" + strings.Join(req.Accept, " ") + "]"
	}

	line, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// Run drives the whole session: the landing scan, then the command loop.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	printlnFn("HOLOFOLIO")
	printlnFn("scanning...")
	time.Sleep(a.cfg.ScanDuration)
	a.Activate()
	_ = a.Show(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
