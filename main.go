package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Cyber-Creek/danbooru/internal"
	"github.com/Cyber-Creek/danbooru/pkg/logger"
	"github.com/mitchellh/go-homedir"
)

var log = logger.Get("Main")

// main is the entry point to the program. The users configuration is
// loaded from their home directory (or a path supplied via -config),
// the server is constructed, and it runs until interrupted.
func main() {
	home, err := homedir.Dir()
	if err != nil {
		log.Fatalf("failed to determine user home directory: %v\n", err)
		os.Exit(1)
	}

	configPath := flag.String("config", filepath.Join(home, ".config", "booru", "config.yaml"), "path to the YAML configuration file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetMinLoggingLevel(logger.VERBOSE.Level())
	} else {
		logger.SetMinLoggingLevel(logger.INFO.Level())
	}

	config := internal.BooruConfig{}
	if err := config.LoadFromFile(*configPath); err != nil {
		log.Fatalf("%v\n", err)
		os.Exit(1)
	}

	booru, err := internal.New(config)
	if err != nil {
		log.Fatalf("failed to construct server: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go listenForInterrupt(cancel)

	if err := booru.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v\n", err)
		os.Exit(1)
	}

	log.Emit(logger.STOP, "Server shutdown complete\n")
}

func listenForInterrupt(cancel context.CancelFunc) {
	exitChannel := make(chan os.Signal, 1)
	signal.Notify(exitChannel, os.Interrupt, syscall.SIGTERM)

	<-exitChannel
	cancel()
}
