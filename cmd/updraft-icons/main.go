package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"updraft-extension/internal/config"
	"updraft-extension/internal/icon"
	"updraft-extension/internal/logger"
	"updraft-extension/internal/manifest"
	"updraft-extension/internal/ui"
)

type options struct {
	outDir       string
	logoPath     string
	manifestPath string
	writeICO     bool
}

func main() {
	outDir := flag.String("out", config.DefaultIconsDir(), "destination directory for the icon set")
	logoPath := flag.String("logo", "", "scale a PNG logo instead of drawing the arrow")
	manifestPath := flag.String("manifest", "", "manifest.json to point at the generated icons")
	writeICO := flag.Bool("ico", false, "also bundle the set into "+config.ICOName)
	verbose := flag.Bool("verbose", false, "debug logging on stderr")
	flag.Parse()

	logger.Init(*verbose)

	fmt.Println("--- Generating Icons ---")

	opts := options{
		outDir:       *outDir,
		logoPath:     *logoPath,
		manifestPath: *manifestPath,
		writeICO:     *writeICO,
	}
	if err := run(opts, os.Stdout); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
	fmt.Println("Icons Generated Successfully!")
}

// run generates the icon set. Any failure stops the run where it stands:
// files already written stay, later sizes are not attempted.
func run(opts options, out io.Writer) error {
	start := time.Now()

	var logo image.Image
	if opts.logoPath != "" {
		img, err := icon.LoadLogo(opts.logoPath)
		if err != nil {
			return err
		}
		ui.Info("Using logo: " + opts.logoPath)
		if b := img.Bounds(); b.Dx() != b.Dy() {
			ui.Warning(fmt.Sprintf("Logo is %dx%d; scaled icons will be distorted.", b.Dx(), b.Dy()))
		}
		logo = img
	}

	var pngs [][]byte
	for _, size := range config.IconSizes {
		if err := os.MkdirAll(opts.outDir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", opts.outDir, err)
		}

		var img *image.RGBA
		if logo != nil {
			img = icon.Scale(logo, size)
		} else {
			img = icon.Draw(size)
		}

		data, err := icon.EncodePNG(img)
		if err != nil {
			return fmt.Errorf("encoding icon%d: %w", size, err)
		}
		destPath := config.IconPath(opts.outDir, size)
		if err := os.WriteFile(destPath, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", destPath, err)
		}
		logger.Log.Debug().Int("size", size).Str("path", destPath).Int("bytes", len(data)).Msg("icon written")

		fmt.Fprintf(out, "Created %s\n", config.IconFileName(size))

		if opts.writeICO {
			pngs = append(pngs, data)
		}
	}

	if opts.writeICO {
		icoPath := filepath.Join(opts.outDir, config.ICOName)
		if err := os.WriteFile(icoPath, icon.BuildICO(config.IconSizes, pngs), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", icoPath, err)
		}
		logger.Log.Debug().Str("path", icoPath).Msg("ico written")
		fmt.Fprintf(out, "Created %s\n", config.ICOName)
	}

	if opts.manifestPath != "" {
		ui.Info("Updating manifest icons: " + opts.manifestPath)
		if err := manifest.Update(opts.manifestPath, opts.outDir, config.IconSizes); err != nil {
			return err
		}
		ui.Success("Manifest updated.")
	}

	logger.Log.Debug().Dur("elapsed", time.Since(start)).Msg("generation complete")
	return nil
}
