package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/fs"
	"github.com/fwojciec/adscout/goquery"
	adshttp "github.com/fwojciec/adscout/http"
	"github.com/fwojciec/adscout/readability"
	"github.com/fwojciec/adscout/rod"
	"github.com/fwojciec/adscout/scrape"
	adslog "github.com/fwojciec/adscout/slog"
	"github.com/fwojciec/adscout/sqlite"
	"github.com/fwojciec/adscout/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Store path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database, when the sqlite store is selected.
	DB *sqlite.DB

	// Listing store for end-to-end testing.
	ListingService adscout.ListingService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("adscout"),
		kong.Description("Scrape, store and compare bicycle and motorcycle classified ads"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'adscout --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	path := cli.DB
	if path == "" {
		path = m.DBPath
	}

	// Open listing store
	switch cli.Store {
	case storeJSON:
		m.ListingService = fs.NewStore(jsonPath(path), fs.DefaultNamespace)
	case storeSQLite:
		if err := ensureDir(path); err != nil {
			return err
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ADSCOUT_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()
		m.ListingService = sqlite.NewListingService(m.DB)
	default:
		return adscout.Errorf(adscout.EINVALID, "unknown store %q", cli.Store)
	}
	deps.Listings = m.ListingService
	if logger != nil {
		deps.Listings = adslog.NewLoggingListingService(deps.Listings, logger)
	}

	// Wire the scraper for commands that fetch pages
	var fetchOpts FetchOptions
	rps := defaultRequestsPerSecond
	switch cmd {
	case "scrape":
		fetchOpts = cli.Scrape.FetchOptions
		rps = cli.Scrape.Rate
	case "extract":
		fetchOpts = cli.Extract.FetchOptions
	}
	if cmd == "scrape" || cmd == "extract" {
		fetcher, err := newFetcher(fetchOpts)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		var extractors adscout.ExtractorRegistry = goquery.NewPlatformRegistry(newTextExtractor(fetchOpts.Text))
		if logger != nil {
			fetcher = adslog.NewLoggingFetcher(fetcher, logger)
			extractors = adslog.NewLoggingRegistry(extractors, logger)
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:     fetcher,
			Extractors:  extractors,
			Listings:    deps.Listings,
			RateLimiter: scrape.NewDomainLimiter(rps),
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// defaultRequestsPerSecond limits requests to a single host.
const defaultRequestsPerSecond = 1.0

// newFetcher returns a headless Chrome fetcher when opts.Browser is set and
// a plain HTTP fetcher otherwise.
func newFetcher(opts FetchOptions) (adscout.Fetcher, error) {
	if opts.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(opts.Timeout),
			rod.WithSettleDelay(opts.Settle),
		)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return adshttp.NewFetcher(adshttp.WithTimeout(opts.Timeout)), nil
}

// newTextExtractor returns the main text extractor named by --text.
func newTextExtractor(name string) adscout.TextExtractor {
	if name == textTrafilatura {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "adscout.db"
	}
	return filepath.Join(home, ".adscout", "adscout.db")
}

// jsonPath swaps a .db extension for .json so both stores can share the
// same --db default.
func jsonPath(path string) string {
	if ext := filepath.Ext(path); ext == ".db" {
		return strings.TrimSuffix(path, ext) + ".json"
	}
	return path
}

func ensureDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
