// Package main is the erabu CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/cli"
	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/models"
	"github.com/hyperjump/erabu/internal/pipeline"
	"github.com/hyperjump/erabu/internal/server"
	"github.com/hyperjump/erabu/internal/storage"
	"github.com/hyperjump/erabu/internal/youtube"
	"github.com/hyperjump/erabu/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/erabu/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists it
// is used, so that "erabu server" from the project dir uses the project's
// config (including debug). Returns the config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "query":
		runQuery()
	case "export":
		runExport()
	case "version", "--version", "-v":
		fmt.Printf("erabu version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (upstream requests, branch progress, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	pruneCtx, pruneCancel := context.WithCancel(context.Background())
	defer pruneCancel()
	if components.Cache != nil {
		go pruneLoop(pruneCtx, components.Cache, logger)
	}

	srv := server.NewServer(components.Engine, &cfg.Server, version, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	pruneCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printQueryUsage prints query subcommand usage and ranking hints.
func printQueryUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: erabu query [flags] <topic>\n\n")
	fmt.Fprintf(fs.Output(), "Topic is all remaining arguments joined by spaces. Multi-word topics work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Channels are ranked by the average of four dense ranks: video count,
subscriber count, comment sentiment, and name similarity to the topic.
  • Use --limit to cap how many channels come back.
  • Use --seed to make comment sampling reproducible across runs.
  • Use --server to query a running erabu server instead of calling the
    YouTube API directly (no local API key needed).

Examples:
  erabu query dodgers
  erabu query "los angeles dodgers"              # same as above
  erabu query --limit 5 dodgers
  erabu query --output json dodgers              # structured JSON for other apps
  erabu query --server http://localhost:8080 dodgers
`)
}

// buildQuery joins all positional args with spaces so multi-word topics
// work the same with or without shell quoting (e.g. "los angeles" vs los angeles).
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// queryArgsReorder moves any flags (and their values) that appear after the
// topic to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument, so "erabu query dodgers
// -limit 5" would otherwise leave -limit unparsed.
func queryArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runQuery() {
	queryArgs := queryArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("query", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = run the pipeline locally)")
	limit := fs.Int("limit", 0, "maximum channels to return (0 = default)")
	seed := fs.Int64("seed", 0, "comment sampling seed for reproducible runs (0 = random)")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printQueryUsage(fs) }
	_ = fs.Parse(queryArgs)

	if fs.NArg() < 1 {
		printQueryUsage(fs)
		os.Exit(1)
	}
	topic := buildQuery(fs.Args())
	if topic == "" {
		printQueryUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	request := &models.QueryRequest{Query: topic, Limit: *limit, Seed: *seed}
	response, err := resolveRanking(*serverURL, *configPath, request)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteRanking(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runExport() {
	exportArgs := queryArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = run the pipeline locally)")
	limit := fs.Int("limit", 0, "maximum channels to export (0 = default)")
	seed := fs.Int64("seed", 0, "comment sampling seed for reproducible runs (0 = random)")
	outPath := fs.String("out", "ranking.xlsx", "workbook path to write")
	_ = fs.Parse(exportArgs)

	if fs.NArg() < 1 {
		fmt.Println("Usage: erabu export [flags] <topic>")
		os.Exit(1)
	}
	topic := buildQuery(fs.Args())
	if topic == "" {
		fmt.Println("Usage: erabu export [flags] <topic>")
		os.Exit(1)
	}

	request := &models.QueryRequest{Query: topic, Limit: *limit, Seed: *seed}
	response, err := resolveRanking(*serverURL, *configPath, request)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteWorkbook(*outPath, response); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d channel(s) to %s\n", response.Total, *outPath)
}

// resolveRanking runs the request against a remote server when serverURL is
// set, otherwise it builds the pipeline locally from config.
func resolveRanking(serverURL, configPath string, request *models.QueryRequest) (*models.QueryResponse, error) {
	if serverURL != "" {
		return queryViaHTTP(serverURL, request)
	}

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer components.Close()

	return components.Engine.Run(context.Background(), request)
}

func queryViaHTTP(serverURL string, request *models.QueryRequest) (*models.QueryResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/query", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

// Components holds initialized services.
type Components struct {
	Cache  *storage.Cache
	Engine *pipeline.Engine
}

func (c *Components) Close() {
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	var cache *storage.Cache
	var responseCache youtube.Cache
	if cfg.Cache.Enabled {
		c, err := storage.NewCache(cfg.Cache.Path, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		cache = c
		responseCache = c
	}

	client := youtube.NewClient(cfg.YouTube, responseCache, logger)
	engine := pipeline.NewEngine(client, cfg.YouTube, logger)

	return &Components{Cache: cache, Engine: engine}, nil
}

// pruneLoop clears expired cache rows once an hour while the server runs.
func pruneLoop(ctx context.Context, cache *storage.Cache, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := cache.Prune(ctx)
			if err != nil {
				logger.Warn("cache prune failed", zap.Error(err))
			} else if n > 0 {
				logger.Debug("cache pruned", zap.Int64("removed", n))
			}
		}
	}
}

func printUsage() {
	fmt.Println(`erabu - YouTube channel ranking for a topic

Usage:
  erabu server [flags]            Start the HTTP API server
  erabu query [flags] <topic>     Rank channels for a topic
  erabu export [flags] <topic>    Rank channels and write an Excel workbook
  erabu version                   Show version
  erabu help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/erabu/config.yaml)
  --debug            Enable debug logging (upstream requests, branch progress, etc.)

Query Flags:
  --config string    Config file path (for local pipeline mode)
  --server string    Server URL (default: empty = run the pipeline locally with your API key)
  --limit int        Maximum channels to return (default: 20)
  --seed int         Comment sampling seed for reproducible runs (0 = random)
  --output string    Output format: text or json (default: text)

Export Flags:
  --config string    Config file path (for local pipeline mode)
  --server string    Server URL (default: empty = run the pipeline locally)
  --limit int        Maximum channels to export (default: 20)
  --seed int         Comment sampling seed for reproducible runs (0 = random)
  --out string       Workbook path to write (default: ranking.xlsx)

Examples:
  erabu server
  erabu query dodgers
  erabu query "los angeles dodgers" --limit 5
  erabu query --output json dodgers   # structured JSON for other apps
  erabu query --server http://localhost:8080 dodgers
  erabu export --out dodgers.xlsx dodgers`)
}
