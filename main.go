package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"

	"noseburn/internal/config"
	"noseburn/internal/log"
	"noseburn/internal/tui"
	"noseburn/internal/vm"
)

var configPath = flag.String("config", "./noseburn.toml", "Optional TOML settings file.")

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintln(os.Stderr, "noseburn crashed. See the debug log for details.")
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config file] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "noseburn: %v\n", err)
		os.Exit(1)
	}

	if err := log.SetFileOutput(cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
	}
	defer log.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "noseburn needs a terminal to render the machine view.")
		os.Exit(1)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "noseburn: %v\n", err)
		os.Exit(1)
	}

	prog, err := vm.Parse(string(source))
	if err != nil {
		var perr *vm.ParseError
		if errors.As(err, &perr) {
			line, col := locate(string(source), perr.Pos)
			fmt.Fprintf(os.Stderr, "noseburn: %s:%d:%d: %s\n", path, line, col, perr.Reason)
		} else {
			fmt.Fprintf(os.Stderr, "noseburn: %v\n", err)
		}
		os.Exit(1)
	}
	log.Info("program loaded", "path", path, "instructions", prog.Len())

	controller := vm.NewController(prog, cfg.Frequency)
	app := tui.NewApplication(controller, cfg)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "noseburn: %v\n", err)
		os.Exit(1)
	}
}

// locate converts a byte offset to a 1-based line and column.
func locate(source string, pos int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < pos && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
