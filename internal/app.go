// Package internal provides the App struct that wires all components of
// daystack together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/daystack/internal/cli"
	"github.com/valter-silva-au/daystack/internal/core"
	"github.com/valter-silva-au/daystack/internal/observability"
	"github.com/valter-silva-au/daystack/internal/storage"
	"github.com/valter-silva-au/daystack/pkg/models"
)

// App holds all service dependencies for daystack.
type App struct {
	BasePath string

	ConfigMgr core.ConfigManager
	Config    *models.Config

	Records  storage.RecordManager
	EventLog observability.EventLog

	Store core.Store
}

// NewApp creates and wires all components. basePath is the directory where
// the three records, the event log, and the optional config.yaml live.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	app.Config = cfg

	app.Records = storage.NewRecordManager(basePath)

	// The event log is best-effort; the store runs fine with a nil sink.
	var sink core.EventSink
	if cfg.LogEvents {
		if log, err := observability.NewJSONLEventLog(filepath.Join(basePath, "events.jsonl")); err == nil {
			app.EventLog = log
			sink = log
		}
	}

	app.Store = core.NewStore(app.Records, sink, core.StoreOptions{
		CompletedCap: cfg.CompletedCap,
	})

	// Hand the wired services to the CLI layer.
	cli.Store = app.Store
	cli.Config = cfg

	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines where daystack keeps its records. The
// DAYSTACK_HOME environment variable wins; otherwise ~/.daystack is used,
// falling back to a .daystack directory under the current directory when no
// home can be determined.
func ResolveBasePath() string {
	if home := os.Getenv("DAYSTACK_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		cwd, _ := os.Getwd()
		return filepath.Join(cwd, ".daystack")
	}
	return filepath.Join(home, ".daystack")
}
