package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/gomoku/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi         = 144.0
	fontsize    = 12.0
	lineheight  = 1.2
	extraLines  = 3 // game name, game number and result
	widestTitle = `Game Number: 10000, Move 225`

	finalDelay = 300 // in 100ths of a second
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder renders every position it is given as a frame of an animated GIF.
// It implements gomoku.OutputEncoder.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	w   io.Writer

	maxH, maxW int // maxHeight and maxWidth
	padH, padW int // padding so everything don't start at the topleft
	dy         int
}

// NewEncoder creates an encoder whose frames are at most h by w pixels. Flush writes
// the animation to out.
func NewEncoder(out io.Writer, h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,
		dy:   int(math.Ceil(fontsize * lineheight * dpi / 72)),

		Drawer: font.Drawer{
			Src: image.Black,
			Face: truetype.NewFace(regular, &truetype.Options{
				Size:    fontsize,
				DPI:     dpi,
				Hinting: font.HintingFull,
			}),
		},
		out: &gif.GIF{LoopCount: -1},
		w:   out,
	}
}

// size fixes the frame size from the first board rendered.
func (enc *Encoder) size(rows []string) {
	maxW := font.MeasureString(enc.Face, widestTitle).Ceil()
	for _, row := range rows {
		if w := font.MeasureString(enc.Face, row).Ceil(); w > maxW {
			maxW = w
		}
	}
	w := maxW + 2*enc.padW
	h := (len(rows)+extraLines)*enc.dy + 2*enc.padH

	if w >= enc.maxW {
		w, enc.padW = enc.maxW, 0
	}
	if h >= enc.maxH {
		h, enc.padH = enc.maxH, 0
	}
	enc.H, enc.W = h, w
}

// Encode renders the state of ms as a new frame.
func (enc *Encoder) Encode(ms game.MetaState) error {
	g := ms.State()
	if g == nil {
		return errors.New("Cannot encode a game without state")
	}
	rows := strings.Split(strings.TrimRight(fmt.Sprintf("%s", g), "\n"), "\n")
	if enc.H < 0 {
		enc.size(rows)
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im

	y := enc.padH + enc.dy
	line := func(s string) {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += enc.dy
	}
	for _, row := range rows {
		line(row)
	}
	line(ms.Name())
	line(fmt.Sprintf("Game Number: %d, Move %d", ms.GameNumber(), g.MoveNumber()))

	var delay int
	if ended, winner := g.Ended(); ended {
		delay = finalDelay
		if winner.Valid() {
			line(fmt.Sprintf("Winner: %v", winner))
		} else {
			line("Draw")
		}
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Frames is the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("Nothing to flush")
	}
	return errors.WithMessage(gif.EncodeAll(enc.w, enc.out), "Unable to write gif")
}
