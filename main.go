package main

import (
	"context"
	"fmt"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"scrobbler/config"
	"scrobbler/lastfm"
	"scrobbler/sentry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: "15:04:05",
	})
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	sentry.Init()
	defer sentry.Flush()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <artist name>\n", os.Args[0])
		os.Exit(2)
	}
	name := os.Args[1]

	client := lastfm.New(config.New())
	if err := run(context.Background(), client, name); err != nil {
		sentry.ReportError(err)
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, client *lastfm.Client, name string) error {
	artist, err := client.Artist(name)
	if err != nil {
		return err
	}

	similar, err := artist.Similar(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Artists similar to %s:\n", artist.Name)
	for _, s := range similar {
		fmt.Printf("  %5.1f  %s\n", s.Match, s.Name)
	}

	tracks, err := artist.TopTracks(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nTop tracks by %s:\n", artist.Name)
	for _, t := range tracks {
		fmt.Printf("  %s\n", t.Name)
	}

	return nil
}
