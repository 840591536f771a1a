package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"solar-system/internal/logger"
	"solar-system/internal/texture"
)

var errAssets = errors.New("some textures failed to decode")

var printer = message.NewPrinter(language.English)

// listBodies prints the registry as a table in draw order.
func listBodies(w io.Writer, o *options) error {
	prefs, warn := o.resolve()
	log := logger.New(prefs.LogPath)
	log.SetMirror(nil)
	if warn != nil {
		log.Logf("Using default preferences: %v", warn)
	}
	reg := loadRegistry(prefs, log)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPARENT\tDISTANCE\tSPEED\tSPIN\tRADIUS\tRING\tTEXTURE")
	for i, b := range reg.Bodies() {
		parent := reg.ParentName(i)
		if parent == "" {
			parent = "-"
		}
		ring := ""
		if b.HasRing {
			ring = "yes"
		}
		printer.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.2f\t%s\t%s\n",
			i, b.Name, parent, b.OrbitalRadius, b.OrbitalSpeed, b.SpinSpeed, b.Radius, ring, b.Texture)
	}
	return tw.Flush()
}

// checkAssets decodes every texture the registry refers to and reports each result.
func checkAssets(w io.Writer, o *options) error {
	prefs, warn := o.resolve()
	log := logger.New(prefs.LogPath)
	log.SetMirror(nil)
	if warn != nil {
		log.Logf("Using default preferences: %v", warn)
	}
	reg := loadRegistry(prefs, log)

	failed := 0
	for _, path := range texturePaths(prefs, reg) {
		img, err := texture.Decode(path)
		if err != nil {
			failed++
			log.Log("Failed to load: " + err.Error())
			fmt.Fprintf(w, "FAIL %s: %v\n", relPath(prefs.AssetDir, path), err)
			continue
		}
		b := img.Bounds()
		fmt.Fprintf(w, "ok   %s %dx%d\n", relPath(prefs.AssetDir, path), b.Dx(), b.Dy())
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d", errAssets, failed)
	}
	return nil
}
