// Command pixthumb renders fixed-size PNG thumbnails.
//
// The thumb subcommand decodes images, centres each on a frame of the
// requested size and writes the results as PNG files into a destination
// folder. Images that fail to decode are replaced by a labelled
// placeholder. The placeholder subcommand writes a placeholder on its own.
//
//	pixthumb thumb --size 96x96 --dest thumbs photo.jpg scan.tiff
//	pixthumb placeholder --label "no preview" -o missing.png
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pix"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging" short:"v"`

	Thumb       ThumbCmd       `cmd:"" help:"Render thumbnails of image files"`
	Placeholder PlaceholderCmd `cmd:"" help:"Render a placeholder thumbnail"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pixthumb"),
		kong.Description("Render fixed-size PNG thumbnails."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pix.SetLogger(logger)

	kctx.FatalIfErrorf(kctx.Run(logger))
}
