package placeholder

import "github.com/gogpu/pix/color"

// Option configures a placeholder.
type Option func(*options)

type options struct {
	background color.Color
	foreground color.Color
	border     color.Color
	label      string
}

func defaultOptions() options {
	return options{
		background: color.RGBA{0x30, 0x30, 0x30, 0xff},
		foreground: color.White,
		border:     color.RGBA{0x70, 0x70, 0x70, 0xff},
	}
}

// WithBackground sets the fill color. The default is dark gray.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithForeground sets the label color. The default is white.
func WithForeground(c color.Color) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithBorder sets the color of the one-pixel frame composited over the
// edge of the background. A nil color disables the frame.
func WithBorder(c color.Color) Option {
	return func(o *options) {
		o.border = c
	}
}

// WithLabel sets the text drawn centred in the placeholder. Characters
// outside printable ASCII are folded to their base letter where one
// exists and replaced with '?' otherwise.
func WithLabel(s string) Option {
	return func(o *options) {
		o.label = s
	}
}
