package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	syslog "github.com/RackSec/srslog"
	"github.com/convox/logger"
	"github.com/convox/refsort/pkg/api"
	"github.com/convox/refsort/pkg/config"
	"github.com/convox/refsort/pkg/scheduler"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := setupSyslog(os.Getenv("REFSORT_SYSLOG")); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	s, err := api.New(cfg)
	if err != nil {
		return err
	}

	sc := scheduler.New(s.Engine, cfg.Jobs)
	sc.History = s.History

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sc.Start(ctx)
	})

	g.Go(func() error {
		return s.Serve(ctx, ":"+cfg.Port)
	})

	err = g.Wait()

	if cerr := s.Close(); err == nil {
		err = cerr
	}

	return err
}

func configPath() (string, error) {
	if path := os.Getenv("REFSORT_CONFIG"); path != "" {
		return path, nil
	}

	return config.DefaultPath()
}

// setupSyslog sends all log output to the syslog server at rawurl,
// e.g. tcp+tls://logs.example.org:514.
func setupSyslog(rawurl string) error {
	if rawurl == "" {
		return nil
	}

	u, err := url.Parse(rawurl)
	if err != nil {
		return err
	}

	w, err := syslog.Dial(u.Scheme, u.Host, syslog.LOG_INFO, "refsort")
	if err != nil {
		return err
	}

	w.SetFormatter(syslog.RFC5424Formatter)

	logger.Output = w

	return nil
}
