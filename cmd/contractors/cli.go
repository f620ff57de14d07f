package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/contractors"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	References contractors.ReferenceService
	Places     contractors.PlaceService
	Inquiries  contractors.InquiryService
	Services   contractors.Services
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `name:"db" env:"CONTRACTORS_DB" help:"Database path (default ~/.contractors/contractors.db)"`
	DataDir string `name:"data-dir" env:"CONTRACTORS_DATA_DIR" default:"data" help:"Directory containing keywords.csv and locations.csv"`
	Catalog string `env:"CONTRACTORS_CATALOG" help:"YAML service catalog (defaults to the built-in services)"`

	Serve     ServeCmd     `cmd:"" help:"Run the web server"`
	Keywords  KeywordsCmd  `cmd:"" help:"Search service keywords"`
	Locations LocationsCmd `cmd:"" help:"Search service locations"`
	Validate  ValidateCmd  `cmd:"" help:"Check whether a term is a known keyword or location"`
	Leads     LeadsCmd     `cmd:"" help:"List submitted inquiries"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string `env:"CONTRACTORS_ADDR" default:":3000" help:"Listen address"`
	BaseURL string `name:"base-url" env:"CONTRACTORS_BASE_URL" default:"https://www.topcontractorsdenver.com" help:"Public site URL for canonical links and the sitemap"`
	APIKey  string `name:"api-key" env:"GOOGLE_PLACES_API_KEY" help:"Google Places API key"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	Query string `arg:"" optional:"" help:"Substring to match; empty lists all keywords"`
}

// LocationsCmd is the "locations" subcommand.
type LocationsCmd struct {
	Query string `arg:"" optional:"" help:"Substring to match against location or county"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Term string `arg:"" help:"Term to check"`
	Type string `short:"t" enum:"keyword,location" default:"keyword" help:"Term type (keyword or location)"`
}

// LeadsCmd is the "leads" subcommand.
type LeadsCmd struct {
	Service string `short:"s" help:"Only show inquiries for this service"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of inquiries to show"`
}
