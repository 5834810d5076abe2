package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/fancy-go/internal/audio"
	"github.com/Garsondee/fancy-go/internal/config"
	"github.com/Garsondee/fancy-go/internal/game"
)

func main() {
	var cfgPath string
	var debug bool
	var mute bool
	var writeConfig bool

	flag.StringVar(&cfgPath, "config", "", "config file (default: search XDG config dirs for "+config.File+")")
	flag.BoolVar(&debug, "debug", false, "log at debug level and show the TPS readout")
	flag.BoolVar(&mute, "mute", false, "disable the placement sound")
	flag.BoolVar(&writeConfig, "write-config", false, "write the effective config to the XDG config home and exit")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if mute {
		cfg.Sound = false
	}
	logrus.SetLevel(cfg.Level())
	logrus.WithFields(logrus.Fields{
		"source":  cfg.Source,
		"window":  [2]int{cfg.Window.Width, cfg.Window.Height},
		"spacing": cfg.Board.PointSpacing,
	}).Info("config loaded")

	if writeConfig {
		path, err := cfg.Save()
		if err != nil {
			logrus.WithError(err).Fatal("write config")
		}
		logrus.WithField("path", path).Info("config written")
		return
	}

	var opts []game.Option
	var player *audio.Player
	if cfg.Sound {
		p, err := audio.NewPlayer(0.6)
		if err != nil {
			// Non-fatal, the board works without sound.
			logrus.WithError(err).Warn("audio unavailable")
		} else {
			player = p
			opts = append(opts, game.WithSound(player))
		}
	}

	if err := run(cfg, opts); err != nil {
		// logrus.Fatal exits without running defers.
		closePlayer(player)
		logrus.WithError(err).Fatal("game stopped")
	}
	closePlayer(player)
}

func run(cfg *config.Config, opts []game.Option) error {
	g, err := game.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func closePlayer(p *audio.Player) {
	if p != nil {
		p.Close()
	}
}
