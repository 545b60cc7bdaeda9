package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalogrenamer/internal/adapters/cli"
	"catalogrenamer/internal/application"
	"catalogrenamer/internal/config"
	"catalogrenamer/internal/domain"
	"catalogrenamer/internal/infrastructure/filesystem"
	"catalogrenamer/internal/infrastructure/i18n"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("renamer: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := filesystem.NewCatalogStore(cfg.LanguagesDir)
	renameUC := application.NewRenameService(store, domain.Naming{
		TextDomain: cfg.TextDomain,
		Locale:     cfg.Locale,
	})

	cmd := cli.NewCommand(renameUC, i18n.NewTranslator(cfg.ReportLang), os.Stdout, cfg.LanguagesDir, cfg.ReportLang, cfg.Verbose)
	if err := cmd.Run(ctx); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}
