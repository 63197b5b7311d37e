package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KJ-GM/responsive-csx/pkg/export"
	"github.com/KJ-GM/responsive-csx/pkg/profile"
	"github.com/KJ-GM/responsive-csx/pkg/ui"
	"github.com/KJ-GM/responsive-csx/pkg/updater"
	"github.com/KJ-GM/responsive-csx/pkg/version"
)

func main() {
	profilesPath := flag.String("profiles", "", "YAML catalog of device profiles (merged over builtins)")
	startProfile := flag.String("profile", "", "Profile to preview first")
	exportDir := flag.String("export-svg", "", "Write SVG measurement charts to this directory and exit")
	sizesFlag := flag.String("sizes", "", "Comma-separated design sizes for charts (default 4,8,...,64)")
	watch := flag.Bool("watch", false, "Reload the catalog file when it changes (requires -profiles)")
	logPath := flag.String("log", "", "Append debug logs to this file")
	showVersion := flag.Bool("version", false, "Show version")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Println("Usage: rsx [options]")
		fmt.Println("\nPreview responsive measurements across device profiles.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("rsx " + version.Version)
		if tag, url, err := updater.CheckForUpdates(); err == nil && tag != "" {
			fmt.Printf("Update available: %s (%s)\n", tag, url)
		}
		os.Exit(0)
	}

	log := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	catalog := profile.Builtin()
	if *profilesPath != "" {
		loaded, err := profile.LoadFile(*profilesPath)
		if err != nil {
			fmt.Printf("Error loading profiles: %v\n", err)
			os.Exit(1)
		}
		catalog = catalog.Merge(loaded)
	}

	if *exportDir != "" {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			fmt.Printf("Error parsing -sizes: %v\n", err)
			os.Exit(1)
		}
		if err := export.WriteAll(*exportDir, catalog, sizes); err != nil {
			fmt.Printf("Error exporting charts: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d charts to %s\n", len(catalog), *exportDir)
		os.Exit(0)
	}

	m := ui.NewPreviewModel(catalog, *startProfile)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())

	if *watch {
		if *profilesPath == "" {
			fmt.Println("-watch requires -profiles")
			os.Exit(1)
		}
		stop, err := profile.Watch(*profilesPath, 0, log, func(r profile.Reload) {
			if r.Err == nil {
				r.Catalog = profile.Builtin().Merge(r.Catalog)
			}
			p.Send(ui.CatalogReloadedMsg{Reload: r})
		})
		if err != nil {
			fmt.Printf("Error watching profiles: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running preview: %v\n", err)
		os.Exit(1)
	}
}

// parseSizes parses "8,12,16" into design sizes; empty means defaults.
func parseSizes(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}
