package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/contractors"
	"github.com/fwojciec/contractors/csv"
	"github.com/fwojciec/contractors/geo"
	cthttp "github.com/fwojciec/contractors/http"
	ctslog "github.com/fwojciec/contractors/slog"
	"github.com/fwojciec/contractors/sqlite"
	"github.com/fwojciec/contractors/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
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
		kong.Name("contractors"),
		kong.Description("Denver contractors directory."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'contractors --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	// Flags may precede the command, so take its name from the parse result.
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.References = ctslog.NewLoggingReferenceService(
		csv.NewReferenceService(os.DirFS(cli.DataDir)),
		deps.Logger,
	)

	deps.Services = contractors.DefaultServices()
	if cli.Catalog != "" {
		if deps.Services, err = yaml.LoadCatalog(cli.Catalog); err != nil {
			return fmt.Errorf("failed to load service catalog: %w", err)
		}
	}

	if cmd == "serve" || cmd == "leads" {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CONTRACTORS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Inquiries = ctslog.NewLoggingInquiryService(sqlite.NewInquiryService(m.DB), deps.Logger)
	}

	if cmd == "serve" {
		if cli.Serve.APIKey == "" {
			fmt.Fprintln(stderr, "GOOGLE_PLACES_API_KEY not set; service pages will render without listings")
		}
		places := cthttp.NewPlaceService(cli.Serve.APIKey, cthttp.WithLogger(deps.Logger))
		deps.Places = ctslog.NewLoggingPlaceService(
			geo.NewDistancePlaceService(places, geo.DefaultCenter),
			deps.Logger,
		)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "contractors.db"
	}
	dir := filepath.Join(home, ".contractors")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "contractors.db")
}
