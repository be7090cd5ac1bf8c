// Command prism-dbg loads a textual Prism module, runs the debug-metadata
// pipeline over it and reports the collected diagnostics. With -watch it
// keeps re-running the pipeline whenever the module file changes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/prism-lang/prism/internal/bitcode"
	"github.com/prism-lang/prism/internal/config"
	"github.com/prism-lang/prism/internal/dbginfo"
	"github.com/prism-lang/prism/internal/diag"
	"github.com/prism-lang/prism/internal/ir"
	"github.com/prism-lang/prism/internal/irtext"
	"github.com/prism-lang/prism/internal/pass"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	switch sub {
	case "help", "-h", "--help":
		usage()
	case "version":
		fmt.Println("prism-dbg " + version)
	case "run":
		os.Exit(cmdRun(args))
	default:
		fmt.Fprintf(os.Stderr, "prism-dbg: unknown command %q\n", sub)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: prism-dbg <command> [flags]

commands:
  run [-config file] [-watch] [-print] <module.yaml>
      load a module, run the debug-metadata passes, report diagnostics
  version
      print the tool version
  help
      show this help
`)
}

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "configuration file (YAML)")
	watch := fs.Bool("watch", false, "re-run when the module file changes")
	printIR := fs.Bool("print", false, "print the module after the passes ran")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "prism-dbg run: exactly one module file expected")
		return 2
	}
	file := fs.Arg(0)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "prism-dbg:", err)
			return 2
		}
	}

	log, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prism-dbg:", err)
		return 2
	}
	defer log.Sync()

	if !*watch {
		return runOnce(log, cfg, file, *printIR)
	}
	return runWatch(log, cfg, file, *printIR)
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	lvl, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func runOnce(log *zap.Logger, cfg config.Config, file string, printIR bool) int {
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prism-dbg:", err)
		return 2
	}

	ctx := ir.NewContext()
	m, err := bitcode.Load(irtext.Decoder{}, data, ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prism-dbg:", err)
		return 2
	}

	collector := diag.NewCollector()
	collector.SetErrorLimit(cfg.MaxErrors)
	collector.SetWarningLimit(cfg.MaxWarnings)
	ctx.SetDiagnosticHandler(collector)

	runner := pass.NewRunner(log,
		dbginfo.LoadTargetInfoPass{},
		dbginfo.ScatterPass{},
	)
	changed, err := runner.Run(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prism-dbg:", err)
		return 2
	}
	log.Info("pipeline complete",
		zap.String("module", m.Name),
		zap.Bool("changed", changed))

	if printIR {
		fmt.Print(m.String())
	}

	collector.Sort()
	for _, d := range collector.Diagnostics() {
		fmt.Println(diag.Format(d, cfg.Color))
	}
	fmt.Println(diag.FormatSummary(collector))

	if collector.HasErrors() {
		return 1
	}
	return 0
}

func runWatch(log *zap.Logger, cfg config.Config, file string, printIR bool) int {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, "prism-dbg:", err)
		return 2
	}
	defer w.Close()
	if err := w.Add(file); err != nil {
		fmt.Fprintln(os.Stderr, "prism-dbg:", err)
		return 2
	}

	runOnce(log, cfg, file, printIR)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return 0
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Info("module changed, re-running", zap.String("file", ev.Name))
			runOnce(log, cfg, file, printIR)
		case err, ok := <-w.Errors:
			if !ok {
				return 0
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}
