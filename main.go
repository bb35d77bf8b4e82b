package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/checkicons/internal/app"
	"github.com/rook-computer/checkicons/internal/config"
	"github.com/rook-computer/checkicons/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the icons into the working directory and returns the process
// exit status. Files it opens are closed before it returns.
func run(args []string, stdout, stderr io.Writer) int {
	defaults, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}

	flags := flag.NewFlagSet("checkicons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	debug := flags.Bool("debug", defaults.Debug, "enable debug logging to "+defaults.DebugLogPath+"; also configurable via "+config.EnvDebug)
	stdioLog := flags.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Fprintln(stderr, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile(defaults.DebugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(stderr, "debug log open error:", err)
		}
	}

	renderer := render.NewPNGRenderer()
	renderer.Logger = logger

	a := app.New(renderer, stdout)
	a.Logger = logger

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintln(stderr, "icon generation failed:", err)
		return 1
	}
	return 0
}
