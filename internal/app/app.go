// Package app implements the application layer for cram.
package app

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cram/internal/adapters/detector"
	"go.trai.ch/cram/internal/adapters/identity"
	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/adapters/telemetry"
	"go.trai.ch/cram/internal/adapters/watcher"
	"go.trai.ch/cram/internal/core/ports"
)

// toastBuffer bounds how many outcome messages wait for a renderer.
const toastBuffer = 32

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath string
	OutputMode string
	JSONLog    bool
	Verbose    bool
}

// logSettings is implemented by loggers whose format can change at runtime.
type logSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	connector    ports.Connector
	notifier     *notify.Notifier
	tracer       ports.Tracer
	logger       ports.Logger
	watcher      ports.DirWatcher
	digests      *watcher.Digests

	identities func(path string) ports.IdentityProvider
	teaOptions []tea.ProgramOption

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	opts Options
	mode detector.OutputMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	connector ports.Connector,
	notifier *notify.Notifier,
	tracer ports.Tracer,
	log ports.Logger,
	w ports.DirWatcher,
	digests *watcher.Digests,
) *App {
	return &App{
		configLoader: loader,
		connector:    connector,
		notifier:     notifier,
		tracer:       tracer,
		logger:       log,
		watcher:      w,
		digests:      digests,
		identities: func(path string) ports.IdentityProvider {
			return identity.NewStore(path)
		},
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithIO replaces the standard streams used for prompts and results.
func (a *App) WithIO(in io.Reader, out, errOut io.Writer) *App {
	a.in, a.out, a.errOut = in, out, errOut
	return a
}

// WithIdentityProvider replaces how the credentials file is opened.
func (a *App) WithIdentityProvider(open func(path string) ports.IdentityProvider) *App {
	a.identities = open
	return a
}

// Configure applies the global flags. It must run before any command.
func (a *App) Configure(opts Options) error {
	mode, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}
	a.opts = opts
	a.mode = mode

	if ls, ok := a.logger.(logSettings); ok {
		ls.SetJSON(opts.JSONLog)
		ls.SetVerbose(opts.Verbose)
	}
	return nil
}

// forwardToasts delivers outcome messages to sink until the returned function is called.
// The returned function waits until every toast delivered so far has reached sink.
func (a *App) forwardToasts(sink interface{ OnToast(notify.Toast) }) func() {
	toasts, cancel := a.notifier.Subscribe(toastBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for t := range toasts {
			sink.OnToast(t)
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	// Every span started through the tracer is reported to the renderer.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}

// terminal returns the file behind w, if any.
func terminal(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
