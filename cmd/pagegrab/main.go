package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	pagegrab "github.com/mstolarz/pagegrab"
	"github.com/mstolarz/pagegrab/cloud"
	pggoquery "github.com/mstolarz/pagegrab/goquery"
	pghttp "github.com/mstolarz/pagegrab/http"
	pgrod "github.com/mstolarz/pagegrab/rod"
	pgslog "github.com/mstolarz/pagegrab/slog"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagegrab"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagegrab --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	content := pggoquery.NewExtractor()
	deps.Content = content
	deps.Discoverer = pgslog.NewLoggingDiscoverer(pggoquery.NewDiscoverer(content), logger)
	deps.Registry = pgslog.NewLoggingRegistry(cloud.NewDefaultRegistry(), logger)

	cmd := kongCtx.Command()
	static := (cmd == "discover <url>" && cli.Discover.Static) ||
		(cmd == "extract <url>" && cli.Extract.Static)
	needsBrowser := !static && cmd != "detect <url>" &&
		!(cmd == "resolve <url>" && cli.Resolve.NoBrowser)
	switch {
	case static:
		fetcher := pghttp.NewFetcher()
		defer fetcher.Close()
		deps.Fetcher = fetcher
	case needsBrowser:
		fetcher, err := pgrod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.OpenPage = func(ctx context.Context, url string) (pagegrab.PageContext, func() error, error) {
			return fetcher.Open(ctx, url)
		}
	}

	return kongCtx.Run(deps)
}
