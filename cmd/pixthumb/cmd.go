package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/codec"
	"github.com/gogpu/pix/color"
	"github.com/gogpu/pix/draw"
	"github.com/gogpu/pix/internal/parallel"
	"github.com/gogpu/pix/placeholder"
)

// FrameParams are shared by both subcommands.
type FrameParams struct {
	Size       string `help:"Output size as WIDTHxHEIGHT" default:"128x128"`
	Background string `help:"Background color as #rgb, #rgba, #rrggbb or #rrggbbaa" default:"#303030"`

	size pix.Point  `kong:"-"`
	bg   color.RGBA `kong:"-"`
}

func (p *FrameParams) validate() error {
	var err error
	if p.size, err = parseSize(p.Size); err != nil {
		return err
	}
	if p.bg, err = color.Hex(p.Background); err != nil {
		return fmt.Errorf("invalid background %q: %w", p.Background, err)
	}
	return nil
}

func (p *FrameParams) frame() pix.Rectangle {
	return pix.Rectangle{Max: p.size}
}

type ThumbCmd struct {
	FrameParams

	Inputs  []string `arg:"" help:"Image files to thumbnail" type:"path"`
	Dest    string   `help:"Destination folder for thumbnails" default:"thumbs"`
	Workers int      `help:"Number of images rendered at once, 0 for one per CPU" default:"0"`
}

func (c *ThumbCmd) Validate(kctx *kong.Context) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = dest
	return nil
}

func (c *ThumbCmd) Run(logger *slog.Logger) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	pool := parallel.NewPool(c.Workers)
	defer pool.Close()

	var processed, placeholders, failed atomic.Uint64
	jobs := make([]func(), len(c.Inputs))
	for i, input := range c.Inputs {
		jobs[i] = func() {
			logger := logger.With("file", input)
			out := c.render(logger, input, &placeholders)
			dest := thumbPath(c.Dest, input)
			if err := writePNG(dest, out); err != nil {
				failed.Add(1)
				logger.Error("could not save thumbnail", "error", err)
				return
			}
			processed.Add(1)
			logger.Debug("wrote thumbnail", "output", dest)
		}
	}
	pool.ExecuteAll(jobs)

	errs := failed.Load()
	logger.Info("stats", "processed", processed.Load(), "placeholders", placeholders.Load(),
		"errors", errs, "total", len(c.Inputs))
	if errs > 0 {
		return fmt.Errorf("error processing %d files", errs)
	}
	return nil
}

// render decodes input and frames it, or returns a labelled placeholder
// when the file cannot be decoded.
func (c *ThumbCmd) render(logger *slog.Logger, input string, placeholders *atomic.Uint64) *pix.RGBA {
	img, err := decodeFile(input)
	if err != nil {
		placeholders.Add(1)
		logger.Warn("could not decode image, using placeholder", "error", err)
		return placeholder.New(c.frame(),
			placeholder.WithBackground(c.bg),
			placeholder.WithLabel(filepath.Base(input)),
		)
	}
	return thumbnail(img, c.frame(), c.bg)
}

// thumbPath maps an input file to its PNG thumbnail inside dest.
func thumbPath(dest, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dest, strings.TrimSuffix(base, filepath.Ext(base))+".png")
}

type PlaceholderCmd struct {
	FrameParams

	Output string `help:"Output PNG file" short:"o" default:"placeholder.png"`
	Label  string `help:"Text drawn in the middle of the placeholder"`
	Border string `help:"Frame color, empty for none" default:"#707070"`

	border color.Color `kong:"-"`
}

func (c *PlaceholderCmd) Validate(kctx *kong.Context) error {
	if err := c.validate(); err != nil {
		return err
	}
	output, err := filepath.Abs(c.Output)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Output, err)
	}
	c.Output = output
	if c.Border != "" {
		b, err := color.Hex(c.Border)
		if err != nil {
			return fmt.Errorf("invalid border %q: %w", c.Border, err)
		}
		c.border = b
	}
	return nil
}

func (c *PlaceholderCmd) Run(logger *slog.Logger) error {
	out := placeholder.New(c.frame(),
		placeholder.WithBackground(c.bg),
		placeholder.WithBorder(c.border),
		placeholder.WithLabel(c.Label),
	)
	if err := writePNG(c.Output, out); err != nil {
		return err
	}
	logger.Info("wrote placeholder", "output", c.Output, "size", c.Size)
	return nil
}

// parseSize parses "WxH" with both dimensions positive.
func parseSize(s string) (pix.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return pix.ZP, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return pix.ZP, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return pix.ZP, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return pix.ZP, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return pix.Pt(w, h), nil
}

// thumbnail centres img on a frame filled with bg. Parts of img that do
// not fit are cropped evenly from both sides.
func thumbnail(img *pix.RGBA, frame pix.Rectangle, bg color.Color) *pix.RGBA {
	out := placeholder.New(frame, placeholder.WithBackground(bg), placeholder.WithBorder(nil))

	b := img.Bounds()
	off := pix.Pt(
		frame.Min.X+(frame.Dx()-b.Dx())/2,
		frame.Min.Y+(frame.Dy()-b.Dy())/2,
	)
	r := pix.Rectangle{Min: off, Max: off.Add(b.Size())}
	_ = draw.Draw(out, r, img, b.Min, draw.Over)
	return out
}

func decodeFile(name string) (*pix.RGBA, error) {
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	return codec.Decode(f)
}

func writePNG(name string, img *pix.RGBA) error {
	f, err := os.Create(filepath.Clean(name))
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	if err := codec.EncodePNG(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", name, err)
	}
	return nil
}
