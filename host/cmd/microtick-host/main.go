package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sd "github.com/coreos/go-systemd/v22/daemon"

	"microtick/app"
	"microtick/host/clock"
	"microtick/host/config"
	"microtick/host/monitor"
	"microtick/host/serial"
)

var (
	configPath = flag.String("config", "", "Path to YAML config (defaults are used when empty)")
	mode       = flag.String("mode", "", "Override mode: simulate or monitor")
	device     = flag.String("device", "", "Override serial device path for monitor mode")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeMonitor:
		err = runMonitor(ctx, cfg, logger)
	default:
		err = runSimulate(ctx, cfg, logger)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exited with error", "mode", cfg.Mode, "err", err)
		os.Exit(1)
	}
}

// runSimulate runs the counter loop on the host, printing to stdout
func runSimulate(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	idle, err := cfg.IdleDuration()
	if err != nil {
		return err
	}

	a := app.New(clock.NewMonotonic(cfg.Start()), os.Stdout, cfg.App)
	logger.Info("simulation started",
		"counters", len(cfg.App.Counters),
		"start_tick", cfg.StartTick,
		"idle", idle)
	notifyReady(logger)

	err = a.Run(ctx, idle)

	stats := a.Stats()
	logger.Info("simulation stopped",
		"iterations", stats.Iterations,
		"max_overhead", stats.MaxOverhead.Duration(),
		"write_errors", stats.WriteErrors)
	for _, c := range a.Counters() {
		logger.Info("counter", "counter", c.Name(), "count", c.Count())
	}
	return err
}

// runMonitor follows a board's serial output until interrupted
func runMonitor(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	timeout, err := cfg.ReadTimeoutDuration()
	if err != nil {
		return err
	}

	portCfg := serial.DefaultConfig(cfg.Device)
	portCfg.Baud = cfg.Baud
	portCfg.ReadTimeout = timeout

	port, err := serial.Open(portCfg)
	if err != nil {
		return err
	}
	release := serial.CloseOnCancel(ctx, port)
	defer release()

	if err := port.Flush(); err != nil {
		logger.Warn("flush failed", "device", port.Device(), "err", err)
	}

	logger.Info("monitoring", "device", port.Device(), "baud", cfg.Baud)
	notifyReady(logger)

	m := monitor.New(logger)
	err = m.Run(ctx, port)
	m.LogSummary()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func notifyReady(logger *slog.Logger) {
	if _, err := sd.SdNotify(false, sd.SdNotifyReady); err != nil {
		logger.Debug("systemd notify failed", "err", err)
	}
}
