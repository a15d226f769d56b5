package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/littlewonders/playlearn"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// A missing .env is fine; the environment and config file still apply.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			log.Fatalf("serve: %v", err)
		}
	case "prospectus":
		if err := runProspectus(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("playlearn %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func loadConfig(fs *flag.FlagSet, args []string) (playlearn.SiteConfig, error) {
	path := fs.String("config", "", "config file (yaml, toml or json); defaults to SITE_CONFIG")
	if err := fs.Parse(args); err != nil {
		return playlearn.SiteConfig{}, err
	}
	return playlearn.LoadConfig(*path)
}

func runServe(args []string) error {
	cfg, err := loadConfig(flag.NewFlagSet("serve", flag.ExitOnError), args)
	if err != nil {
		return err
	}

	app, err := playlearn.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Echo.Logger.Infof("%s listening on %s", cfg.Name, cfg.Addr)
	return app.Start(ctx)
}

func printUsage() {
	fmt.Println(`playlearn - the Little Wonders preschool website

Usage:
  playlearn <command> [arguments]

Commands:
  serve         Run the web server
  prospectus    Write the printable prospectus PDF
  version       Print the playlearn version
  help          Show this help message

Flags:
  -config <file>    Config file; SITE_* environment variables override it
  -o <file>         Output file for prospectus (default prospectus.pdf)

Examples:
  playlearn serve -config site.yaml
  SITE_ADDR=:8080 playlearn serve
  playlearn prospectus -o little-wonders.pdf`)
}
