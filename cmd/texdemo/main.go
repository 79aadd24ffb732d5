// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command texdemo drives a pixeltex texture from JSON method calls.
//
// Each line on stdin is one call, for example:
//
//	{"method":"createTexture","arguments":{"width":2,"height":2,"color":"#0000FF"}}
//	{"method":"updateTextureColor","arguments":{"color":"#FF0000"}}
//	{"method":"disposeTexture"}
//
// Each answer is written to stdout as one JSON line. With -snapshot, the
// texture still active at end of input is saved as BMP or PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/pixeltex"
	"github.com/gogpu/pixeltex/channel"
	"github.com/gogpu/pixeltex/registry"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		snapshot   = flag.String("snapshot", "", "save the final texture to this .bmp or .png file")
		verbose    = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	cfg := pixeltex.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pixeltex.LoadConfig(*configPath); err != nil {
			log.Fatalf("texdemo: %v", err)
		}
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	setupLogging(cfg)

	reg := registry.NewMemory()
	mgr := pixeltex.NewManager(reg, cfg.ManagerOptions()...)
	ch := channel.New(cfg.ChannelName)
	ch.SetMethodCallHandler(pixeltex.NewPlugin(mgr, cfg))

	if err := serve(context.Background(), ch, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("texdemo: %v", err)
	}

	if *snapshot != "" {
		if err := saveSnapshot(mgr, *snapshot); err != nil {
			log.Fatalf("texdemo: %v", err)
		}
		log.Printf("Texture saved to %s\n", *snapshot)
	}
}

// setupLogging installs a stderr text logger at the configured level.
func setupLogging(cfg pixeltex.Config) {
	level, enabled, err := cfg.Level()
	if err != nil || !enabled {
		return
	}
	pixeltex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// serve answers every call read from r until end of input.
// Malformed lines are answered with a channel error and skipped.
func serve(ctx context.Context, ch *channel.Channel, r io.Reader, w io.Writer) error {
	dec := channel.NewDecoder(r)
	enc := channel.NewEncoder(w)
	for {
		call, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, channel.ErrEmptyMethod) {
			if err := enc.Encode(channel.Envelope{Error: channel.NewError("BAD_CALL", err.Error())}); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			// The JSON stream cannot be resynchronized after a syntax error.
			return err
		}
		if err := enc.Encode(ch.Invoke(ctx, call)); err != nil {
			return err
		}
	}
}

// saveSnapshot writes the active texture to path, encoding by extension.
func saveSnapshot(mgr *pixeltex.Manager, path string) error {
	frame, ok := mgr.Snapshot()
	if !ok {
		return errors.New("no active texture to save")
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := frame.ToImage()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		return bmp.Encode(f, img)
	case ".png":
		return png.Encode(f, img)
	default:
		return fmt.Errorf("unsupported snapshot format %q", ext)
	}
}
