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
	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/crawl"
	"github.com/fwojciec/siteqa/extract"
	"github.com/fwojciec/siteqa/fs"
	"github.com/fwojciec/siteqa/gemini"
	"github.com/fwojciec/siteqa/goquery"
	"github.com/fwojciec/siteqa/htmltomarkdown"
	sitehttp "github.com/fwojciec/siteqa/http"
	"github.com/fwojciec/siteqa/readability"
	siteslog "github.com/fwojciec/siteqa/slog"
	"github.com/fwojciec/siteqa/sqlite"
	"github.com/fwojciec/siteqa/trafilatura"
	"google.golang.org/genai"
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

	// Services for end-to-end testing.
	SiteService  siteqa.SiteService
	ItemService  siteqa.ItemService
	ChunkService siteqa.ChunkService
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
		kong.Name("siteqa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteqa --help' to see available commands")
	}
	first := args[0]
	if first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	// The urls command is pure network discovery; everything else needs
	// the database.
	var chunkSvc *sqlite.ChunkService
	if cmd != "urls" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SITEQA_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		chunkSvc = sqlite.NewChunkService(m.DB)
		m.SiteService = sqlite.NewSiteService(m.DB)
		m.ItemService = sqlite.NewItemService(m.DB)
		m.ChunkService = chunkSvc
		deps.DB = m.DB
		deps.Sites = m.SiteService
		deps.Items = m.ItemService
		deps.Chunks = m.ChunkService
	}

	if cmd == "urls" || cmd == "scrape" {
		timeout := cli.Urls.Timeout
		if cmd == "scrape" {
			timeout = cli.Scrape.Timeout
		}
		fetcher := sitehttp.NewFetcher(sitehttp.WithTimeout(timeout))
		defer fetcher.Close()
		loggingFetcher := siteslog.NewLoggingFetcher(fetcher, logger)

		deps.Crawler = &crawl.Crawler{
			Fetcher: loggingFetcher,
			Links:   goquery.NewLinkExtractor(),
			Seeds:   siteslog.NewLoggingSeedDiscoverer(sitehttp.NewSeedService(fetcher), logger),
			Logger:  logger,
		}

		if cmd == "scrape" {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}

			deps.Pipeline = &extract.Pipeline{
				Fetcher:      loggingFetcher,
				Extractor:    trafilatura.NewExtractor(),
				Fallback:     readability.NewExtractor(),
				Converter:    htmltomarkdown.NewConverter(),
				TokenCounter: tokenCounter,
			}
			deps.NewWriter = func(path string) siteqa.KnowledgebaseWriter {
				return fs.NewWriter(path)
			}
		}
	}

	if cmd == "index" || cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		embedder := gemini.NewEmbedder(client)
		deps.Embedder = embedder
		if cmd == "ask" {
			deps.Asker = gemini.NewAsker(client, sqlite.NewSearchService(chunkSvc, embedder))
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting in the scrape summary.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("SITEQA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siteqa.db"
	}
	dir := filepath.Join(home, ".siteqa")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siteqa.db")
}
