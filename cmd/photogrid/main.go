package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/photogrid/internal/config"
	"github.com/idursun/photogrid/internal/imageloader"
	"github.com/idursun/photogrid/internal/photo"
	"github.com/idursun/photogrid/internal/ui/common"
	"github.com/idursun/photogrid/internal/ui/photogrid"
)

var Version = "dev"

func main() {
	var (
		editable    bool
		maxSlots    int
		columns     int
		configFile  string
		logFile     string
		debug       bool
		showVersion bool
	)
	flag.BoolVar(&editable, "edit", false, "show delete controls and the add slot")
	flag.IntVar(&maxSlots, "max", photogrid.DefaultMaxSlots, "maximum number of photos in edit mode")
	flag.IntVar(&columns, "columns", 0, "number of grid columns")
	flag.StringVar(&configFile, "config", "", "config file to use instead of the user config")
	flag.StringVar(&logFile, "log", "", "write logs to this file")
	flag.BoolVar(&debug, "debug", false, "log debug messages")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [url|path]...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(Version)
		return
	}

	if logFile != "" {
		f, err := tea.LogToFile(logFile, "photogrid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, warnings, err := config.LoadFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "edit":
			cfg.Grid.Editable = editable
		case "max":
			cfg.Grid.MaxSlots = maxSlots
		case "columns":
			cfg.Grid.Columns = columns
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.ColorsEnabled() {
		common.DefaultPalette.Update(cfg.Colors)
	}

	sources := make([]*photo.Source, 0, flag.NArg())
	for _, arg := range flag.Args() {
		sources = append(sources, photo.Parse(arg))
	}

	var p *tea.Program
	loader, err := imageloader.NewTextLoader(
		imageloader.WithNotify(func(msg tea.Msg) {
			p.Send(msg)
		}),
		imageloader.WithAssets(glyphs(cfg.Assets)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p = tea.NewProgram(newApp(cfg, sources, loader))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func glyphs(assets config.AssetsConfig) map[imageloader.AssetID]string {
	out := make(map[imageloader.AssetID]string, len(assets.Glyphs))
	for id, glyph := range assets.Glyphs {
		out[imageloader.AssetID(id)] = glyph
	}
	return out
}
