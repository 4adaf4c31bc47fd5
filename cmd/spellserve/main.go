// Copyright 2026 The spellserve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling correction server and CLI application.

spellserve suggests corrections for misspelled words by enumerating every
string within two edits of the input and ranking the ones that are known
corpus words by observed frequency. It can operate as a MessagePack IPC
server for integration with text editors, or as a CLI application for
testing and debugging.

The word frequency table is built once at startup from a plain text corpus
and is immutable afterwards; queries share it without locking.

# Usage

Start the server with default settings:

	spellserve -data corpus.txt

Run in CLI mode for interactive testing:

	spellserve -data corpus.txt -c -limit 5

Merge a Redis-backed custom dictionary into the vocabulary:

	spellserve -data corpus.txt -redis localhost:6379

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 64
	max_word_len = 60

	[speller]
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	default_limit = 3

	[corpus]
	min_count = 1
	custom_weight = 1

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a correction
request:

	{"id": "req1", "a": "suggest", "w": "teh", "l": 3}

Receive ranked suggestions with probabilities:

	{"id": "req1", "s": [{"w": "the", "p": 0.847}], "c": 1, "t": 145}

See the server package for the full message catalogue.

# Command Line Flags

	-data string
	    Path to the corpus text file (default "data/corpus.txt")
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return in CLI mode
	-min-count int
	    Drop corpus words seen fewer times than this
	-redis string
	    Redis address for the custom dictionary (empty disables)
	-no-filter
	    Disable input filtering in CLI mode
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spellserve/internal/cli"
	"spellserve/internal/logger"
	"spellserve/pkg/config"
	"spellserve/pkg/corpus"
	"spellserve/pkg/customdict"
	"spellserve/pkg/server"
	"spellserve/pkg/speller"
	"spellserve/pkg/vocab"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, corpus and vocabulary together and hands off to the
// server or the CLI loop. It implements no correction logic itself.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "data/corpus.txt", "Path to the corpus text file")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return")
	minCount := flag.Int("min-count", defaults.Corpus.MinCount, "Drop corpus words seen fewer times than this")
	redisAddr := flag.String("redis", "", "Redis address for the custom dictionary (empty disables)")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")

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

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	v, err := buildVocabulary(appConfig, *dataPath, *minCount, *redisAddr)
	if err != nil {
		log.Fatalf("Failed to build vocabulary: %v", err)
	}
	log.Debugf("Vocabulary ready: %d words, total count %d", v.Len(), v.Total())

	sp := speller.New(v, speller.WithAlphabet(appConfig.Speller.Alphabet))

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(sp, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(*dataPath, v.Len())

	srv := server.NewServer(sp, v, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildVocabulary loads the corpus, merges the optional Redis custom
// dictionary, applies the minimum count filter and constructs the immutable
// vocabulary value.
func buildVocabulary(cfg *config.Config, dataPath string, minCount int, redisAddr string) (*vocab.Vocabulary, error) {
	counts, err := corpus.LoadFile(dataPath)
	if err != nil {
		return nil, err
	}

	if minCount > 1 {
		for word, count := range counts {
			if count < minCount {
				delete(counts, word)
			}
		}
	}

	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		dict := customdict.New(client)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dict.Merge(ctx, counts, cfg.Corpus.CustomWeight); err != nil {
			log.Warnf("Custom dictionary merge failed, continuing without it: %v", err)
		} else {
			log.Debugf("Merged custom dictionary from %s", redisAddr)
		}
	}

	return vocab.New(counts)
}

// printVersion displays the version banner.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Printf("[ %s ] edit-distance spelling corrections, ranked by corpus frequency", AppName)
	banner.Print("", "version", Version)
	banner.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataPath string, words int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("corpus: ( %s )", dataPath)
	log.Infof("words: %d", words)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
