package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rook-computer/checkicons/internal/render"
)

type App struct {
	Render render.Renderer
	Logger Logger
	// Out receives one announcement line per icon written.
	Out io.Writer
	// Dir is the output directory.
	Dir   string
	Sizes []int
}

func New(renderer render.Renderer, out io.Writer) *App {
	return &App{Render: renderer, Logger: NoopLogger{}, Out: out, Dir: ".", Sizes: render.Sizes}
}

// Run renders every configured size in order. The first failure stops the
// run; files already written are left in place.
func (app *App) Run(ctx context.Context) error {
	if app.Render == nil {
		app.Render = render.NewPNGRenderer()
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if pr, ok := app.Render.(*render.PNGRenderer); ok && pr.Logger == nil {
		pr.Logger = app.Logger
	}
	if app.Out == nil {
		app.Out = io.Discard
	}

	start := time.Now()
	for _, size := range app.Sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := app.Render.Render(app.Dir, size)
		if err != nil {
			app.Logger.Errorf("app", "render size %d: %v", size, err)
			return err
		}
		fmt.Fprintf(app.Out, "Created %s\n", filepath.Base(path))
	}
	app.Logger.Infof("app", "%d icons in %s", len(app.Sizes), time.Since(start))
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
