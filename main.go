/*
This is an example application that drives the engine package against the
software backend in testbed.
*/
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/spaghettifunk/scena/engine/config"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/testbed"
)

const configPath = "config.toml"

func main() {
	cfg := loadConfig()

	game, err := testbed.NewGame(cfg)
	if err != nil {
		core.LogFatal("failed to start the testbed: %s", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// capture sigterm and other system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		cancel()
	}()

	watcher, err := config.NewWatcher(configPath, game.ApplyConfig)
	if err == nil {
		defer watcher.Close()
	} else {
		core.LogWarn("config watcher disabled: %s", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return game.Run(ctx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		core.LogError("testbed stopped: %s", err)
	}
	if err := game.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			core.LogWarn("cannot load %s, falling back to defaults: %s", configPath, err)
		}
		return config.Default()
	}
	return cfg
}
