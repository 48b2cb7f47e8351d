package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/geomath/internal/config"
	"github.com/zeusync/geomath/internal/injector"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	workers := flag.Int("workers", -1, "scenario files evaluated at once (0 = unbounded)")
	failFast := flag.Bool("fail-fast", false, "stop a scenario at its first failed expectation")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scenario.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		return 2
	}
	if *workers >= 0 {
		cfg.Runner.Workers = *workers
	}
	if *failFast {
		cfg.Runner.FailFast = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid config:", err)
		return 2
	}

	runner, err := injector.InitializeRunner(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating runner:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := runner.RunFiles(ctx, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	code := 0
	for _, report := range reports {
		if _, err = report.WriteTo(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing report:", err)
			return 1
		}
		if !report.OK() {
			code = 1
		}
	}
	return code
}
