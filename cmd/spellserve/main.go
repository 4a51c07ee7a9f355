// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling correction server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

SpellServe corrects single words against a dictionary built from a plain text
corpus. Candidates are the known words within two edits of the input, and the
one seen most often in the corpus wins. It can operate as a MessagePack IPC
server for integration with text editors, or as a CLI application for testing
and debugging.

# Usage

Start the server with the default corpus (big.txt):

	spellserve

Use another corpus, reload it whenever it changes, and enable debug mode:

	spellserve -corpus /path/to/corpus.txt.gz -watch -d

Run in CLI mode for interactive testing:

	spellserve -c -limit 5

The corpus is any text file; gzip files are recognized by their .gz extension.
It is looked up as given, then relative to the working directory, the binary,
and the config directory. A missing corpus at startup is fatal.

# Configuration

Runtime configuration is read from a TOML file, created with defaults when it
doesn't exist:

	[server]
	max_word_len = 60
	max_suggestions = 24

	[corpus]
	default_path = "big.txt"
	watch = false
	cache_size = 4096

	[cli]
	default_limit = 10
	show_frequency = true

Flags given on the command line take precedence over the file.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout:

	{"id": "req1", "a": "correct", "w": "speling"}
	{"id": "req1", "w": "speling", "c": "spelling", "ch": true, "t": 412}

See package server for every action and response.

# Command Line Flags

	-corpus string
	    Corpus file to build the dictionary from (default from config)
	-config string
	    Path to a config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to show in CLI mode
	-no-filter
	    Do not skip CLI input that is not a single word
	-watch
	    Reload the corpus when the file changes
	-cache int
	    Number of candidate sets to cache (0 disables)
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler stops background work and exits normally on OS signals.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", defaults.Corpus.DefaultPath, "Corpus file to build the dictionary from")
	configPath := flag.String("config", "", "Path to a config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to show in CLI mode")
	noFilter := flag.Bool("no-filter", false, "Disable CLI input filtering (DBG only)")
	watch := flag.Bool("watch", defaults.Corpus.Watch, "Reload the corpus when the file changes")
	cacheSize := flag.Int("cache", defaults.Corpus.CacheSize, "Number of candidate sets to cache (0 disables)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(activeConfig))

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "corpus":
			appConfig.Corpus.DefaultPath = *corpusPath
		case "watch":
			appConfig.Corpus.Watch = *watch
		case "cache":
			appConfig.Corpus.CacheSize = *cacheSize
		case "limit":
			appConfig.CLI.DefaultLimit = *limit
		}
	})

	resolvedCorpus, found := utils.NewPathResolver().ResolveFile(appConfig.Corpus.DefaultPath)
	if !found {
		log.Fatalf("Corpus not found: %s (looked for %s)", appConfig.Corpus.DefaultPath, resolvedCorpus)
	}

	engine := suggest.NewEngine(
		suggest.WithCacheSize(appConfig.Corpus.CacheSize),
		suggest.WithLogger(logger.New("engine")),
	)
	log.Debugf("Loading corpus: %s", resolvedCorpus)
	if err := engine.LoadCorpus(resolvedCorpus); err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Debug("Dictionary ready", "stats", engine.Stats())

	if appConfig.Corpus.Watch {
		go func() {
			if err := engine.Watch(ctx, resolvedCorpus); err != nil {
				log.Errorf("Corpus watcher stopped: %v", err)
			}
		}()
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"limit", appConfig.CLI.DefaultLimit,
			"showFrequency", appConfig.CLI.ShowFrequency,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(engine,
			appConfig.CLI.DefaultLimit,
			appConfig.Server.MaxWordLen,
			appConfig.CLI.ShowFrequency,
			*noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig, os.Stdin, os.Stdout)

	showStartupInfo(resolvedCorpus, engine.Stats())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SpellServe ] Corrects your speling!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(corpus string, stats map[string]int) {
	info := logger.NewWithConfig(AppName, log.InfoLevel, false, false, log.TextFormatter)

	info.Infof("Version: %s", Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	info.Infof("corpus: ( %s )", corpus)
	info.Infof("words: %s distinct, %s total",
		utils.FormatWithCommas(stats["distinctWords"]), utils.FormatWithCommas(stats["totalTokens"]))
	info.Info("status: ready")
	info.Print("Press Ctrl+C to exit")
}
