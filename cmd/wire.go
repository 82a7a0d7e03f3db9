package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jpedro/master/internal/adapters/clipboard"
	"github.com/jpedro/master/internal/adapters/credentials/chain"
	"github.com/jpedro/master/internal/adapters/credentials/env"
	"github.com/jpedro/master/internal/adapters/credentials/terminal"
	"github.com/jpedro/master/internal/adapters/picker"
	registryfile "github.com/jpedro/master/internal/adapters/registry/file"
	"github.com/jpedro/master/internal/adapters/render/console"
	"github.com/jpedro/master/internal/application"
	"github.com/jpedro/master/internal/config"
	"github.com/jpedro/master/internal/logging"
	"github.com/jpedro/master/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg     config.Config
	service *application.PasswordService
	out     *console.Renderer
	errOut  *console.Renderer
}

// wireOverrides replaces system adapters, mainly so tests never touch the
// real clipboard or terminal.
type wireOverrides struct {
	clipboard ports.Clipboard
	picker    ports.ServicePicker
	prompter  ports.Prompter
}

// lazyApp defers config loading until a command that needs it runs, after
// flags have been parsed.
type lazyApp struct {
	v         *viper.Viper
	overrides wireOverrides
	stdout    io.Writer
	stderr    io.Writer

	once sync.Once
	app  *app
	err  error
}

func (l *lazyApp) get() (*app, error) {
	l.once.Do(func() {
		cfg, err := config.Load(l.v)
		if err != nil {
			l.err = fmt.Errorf("load config: %w", err)
			return
		}
		l.app, l.err = wireApp(cfg, l.stdout, l.stderr, l.overrides)
	})

	return l.app, l.err
}

func wireApp(cfg config.Config, stdout, stderr io.Writer, overrides wireOverrides) (*app, error) {
	registry, err := registryfile.NewStore(cfg.ListPath)
	if err != nil {
		return nil, fmt.Errorf("wire service registry: %w", err)
	}

	prompter := overrides.prompter
	if prompter == nil {
		prompter = terminal.NewPrompter(os.Stdin, stderr)
	}

	credentials, err := chain.NewSourceChecked(env.NewSource(cfg.Username, cfg.Password), prompter)
	if err != nil {
		return nil, fmt.Errorf("wire credential source: %w", err)
	}

	var sink ports.Clipboard = clipboard.NewSystem()
	if overrides.clipboard != nil {
		sink = overrides.clipboard
	}

	var servicePicker ports.ServicePicker = picker.NewPicker(os.Stdin, stderr, prompter)
	if overrides.picker != nil {
		servicePicker = overrides.picker
	}

	logger := logging.New(stderr, cfg.Debug)
	if cfg.File != "" {
		logger.Debug("read config file", "path", cfg.File)
	}
	logger.Debug("using registry", "path", registry.Path())

	service := application.NewPasswordService(registry, credentials, sink, application.Options{
		Layout: cfg.Layout,
		Picker: servicePicker,
		Logger: logger,
	})

	return &app{
		cfg:     cfg,
		service: service,
		out:     console.NewRenderer(stdout),
		errOut:  console.NewRenderer(stderr),
	}, nil
}
