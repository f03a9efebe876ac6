package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/crawl"
	"github.com/fwojciec/siteqa/extract"
	"github.com/fwojciec/siteqa/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB     *sqlite.DB
	Sites  siteqa.SiteService
	Items  siteqa.ItemService
	Chunks siteqa.ChunkService

	Crawler  *crawl.Crawler
	Pipeline *extract.Pipeline
	Embedder siteqa.Embedder
	Asker    siteqa.Asker

	// NewWriter builds the knowledgebase writer for an output path.
	NewWriter func(path string) siteqa.KnowledgebaseWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Urls   UrlsCmd   `cmd:"" help:"Discover the content URLs of a site"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape a site into a knowledgebase"`
	List   ListCmd   `cmd:"" help:"List scraped sites"`
	Delete DeleteCmd `cmd:"" help:"Delete a site and its content"`
	Index  IndexCmd  `cmd:"" help:"Chunk and embed a site's content for search"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about a site's content"`
}

// UrlsCmd is the "urls" subcommand.
type UrlsCmd struct {
	URL         string        `arg:"" help:"Root URL of the site"`
	MaxPages    int           `short:"m" default:"200" help:"Page budget"`
	Concurrency int           `short:"c" default:"16" help:"Concurrent fetch limit"`
	Exclude     []string      `short:"x" help:"Skip URLs matching regex (repeatable)"`
	Include     []string      `help:"Include URL regex (repeatable)"`
	Timeout     time.Duration `default:"20s" help:"Per-request fetch timeout"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Name        string        `arg:"" help:"Site name"`
	URL         string        `arg:"" help:"Root URL of the site"`
	MaxPages    int           `short:"m" default:"200" help:"Page budget"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Exclude     []string      `short:"x" help:"Skip URLs matching regex (repeatable)"`
	Include     []string      `help:"Include URL regex (repeatable)"`
	Timeout     time.Duration `default:"20s" help:"Per-request fetch timeout"`
	Output      string        `short:"o" help:"Knowledgebase JSON output path (default <name>.json)"`
	Force       bool          `short:"f" help:"Delete existing site first"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Name         string `arg:"" help:"Site name"`
	ChunkSize    int    `default:"1200" help:"Chunk size in characters"`
	ChunkOverlap int    `default:"150" help:"Overlap between consecutive chunks"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Site name"`
	Question string `arg:"" help:"Question to ask about the site"`
}
