package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/littlewonders/playlearn/brochure"
	"github.com/littlewonders/playlearn/content"
)

func runProspectus(args []string) error {
	fs := flag.NewFlagSet("prospectus", flag.ExitOnError)
	out := fs.String("o", "prospectus.pdf", "output file")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	store, err := content.NewStore(cfg.ContentPath)
	if err != nil {
		return err
	}
	c, _ := store.Get()

	pdf, err := brochure.Build(c, brochure.Options{AssetDir: cfg.StaticDir, SiteURL: cfg.URL})
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *out, len(pdf))
	return nil
}
