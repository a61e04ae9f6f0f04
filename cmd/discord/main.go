package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/keshon/devtools/internal/commands"
	"github.com/keshon/devtools/internal/config"
	"github.com/keshon/devtools/internal/devtools"
	"github.com/keshon/devtools/internal/discord"
	"github.com/keshon/devtools/internal/permissions"
	"github.com/keshon/devtools/internal/storage"
	"github.com/keshon/devtools/pkg/cmd"
)

func main() {
	log := logrus.New()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	defaults, err := config.LoadDefaults(cfg.DefaultsPath)
	if err != nil {
		log.Fatal(err)
	}
	groupDefaults := make(map[string]permissions.Level, len(defaults.Groups))
	for name, raw := range defaults.Groups {
		level, err := permissions.ParseLevel(raw)
		if err != nil {
			log.Fatalf("defaults group %q: %v", name, err)
		}
		groupDefaults[name] = level
	}

	var store *storage.Store
	if cfg.StoragePath != "" {
		store, err = storage.New(cfg.StoragePath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	registry := cmd.NewRegistry()
	bot := discord.NewBot(cfg, registry, log)

	catalog, err := commands.Catalog()
	if err != nil {
		log.Fatal(err)
	}
	for _, ext := range catalog {
		bot.Extensions().Add(ext)
		if err := bot.Extensions().Load(ext.Name); err != nil {
			log.Fatal(err)
		}
	}

	tools, err := devtools.New(bot, devtools.Config{
		Prog:              cfg.Prog,
		Moderators:        defaults.Moderators,
		Administrators:    defaults.Administrators,
		Developers:        defaults.Developers,
		GroupDefaults:     groupDefaults,
		WhitelistDefaults: defaults.Whitelists,
		BlacklistDefaults: defaults.Blacklists,
		Trackers:          defaults.Trackers,
		FilesPath:         cfg.FilesPath,
		RequirementsPath:  cfg.RequirementsPath,
		Registry:          registry,
		Store:             store,
		Log:               log,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer devtools.Detach(bot)

	if err := tools.Resolve(registry); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Infof("starting %s bot", cfg.Prog)
	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("received signal %s, shutting down", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Errorf("discord bot error: %v", err)
		}
		cancel()
	}

	log.Info("discord bot exited cleanly")
}
