package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/casefolio/console/internal/config"
	"github.com/casefolio/console/internal/logging"
	"github.com/casefolio/console/internal/server"
)

func main() {
	port := flag.String("port", "", "server port (overrides PORT)")
	catalog := flag.String("catalog", "", "catalog path (overrides CATALOG_PATH)")
	dev := flag.Bool("dev", false, "development mode (colored logs, debug level)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *catalog != "" {
		cfg.Content.CatalogPath = *catalog
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		l, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: false,
			OutputPaths: []string{"stdout"},
		})
		if err != nil {
			log.Fatalf("failed to create logger: %v", err)
		}
		logger = l
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		if err := srv.Close(); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("server error: %v", err)
	}
}
