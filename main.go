package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/api"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/cms"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/config"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/content"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/export"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/services"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/templates"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	if config.IsDevelopment(cfg) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	pages, err := content.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading site pages")
	}

	tmpl, err := templates.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading templates")
	}

	site := api.Site{
		Content:   cms.New(cms.NewClient(cfg)),
		Preview:   cms.New(cms.NewPreviewClient(cfg)),
		Pages:     pages,
		Templates: tmpl,
		Mailer:    services.NewMailer(cfg),
		Config:    cfg,
	}

	// If exporting the static site, run the export and exit
	if config.GetBool(cfg, "EXPORT_STATIC", false) {
		outDir := config.GetString(cfg, "EXPORT_DIR", "dist")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := export.New(site, outDir).Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Error exporting static site")
		}
		return
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(site)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
