// Package diceimage renders the single die battle between a player and the bot as a PNG.
//
// The picture shows both avatars, both names, both dice and a glow around the
// winner. Text is drawn with the fixed 7x13 font scaled up, so names are
// reduced to printable ASCII.
package diceimage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 700
	Height = 250

	AvatarSize = 80
	DieSize    = 60

	maxNameLength = 12

	PlayerX = 100
	BotX    = 600

	AvatarY = 40
	nameY   = 122
	DieY    = 150
)

var (
	backgroundColor  = color.RGBA{139, 69, 19, 255}
	textColor        = color.RGBA{255, 255, 255, 255}
	numberColor      = color.RGBA{255, 215, 0, 255}
	vsColor          = color.RGBA{255, 0, 0, 255}
	shadowColor      = color.NRGBA{0, 0, 0, 180}
	placeholderOuter = color.RGBA{100, 100, 100, 255}
	placeholderInner = color.RGBA{150, 150, 150, 255}
	pipColor         = color.RGBA{0, 0, 0, 255}
	dieColor         = color.RGBA{255, 255, 255, 255}
)

// pip centers relative to the top left corner of a die
var pips = map[int][]image.Point{
	1: {{30, 30}},
	2: {{15, 15}, {45, 45}},
	3: {{15, 15}, {30, 30}, {45, 45}},
	4: {{15, 15}, {45, 15}, {15, 45}, {45, 45}},
	5: {{15, 15}, {45, 15}, {30, 30}, {15, 45}, {45, 45}},
	6: {{15, 15}, {45, 15}, {15, 30}, {45, 30}, {15, 45}, {45, 45}},
}

type Side struct {
	Name string

	// Avatar is drawn as a circle. nil draws a grey placeholder
	Avatar image.Image

	Die int
}

type Battle struct {
	Player Side
	Bot    Side
}

type Winner int

const (
	Tie Winner = iota
	PlayerWins
	BotWins
)

func (b Battle) Winner() Winner {
	switch {
	case b.Player.Die > b.Bot.Die:
		return PlayerWins
	case b.Bot.Die > b.Player.Die:
		return BotWins
	}

	return Tie
}

// Printable reduces name to at most 12 printable ASCII characters, returning fallback if nothing is left
func Printable(name, fallback string) string {
	var sb strings.Builder
	n := 0
	for _, r := range name {
		if r < 0x20 || r > 0x7e {
			continue
		}
		sb.WriteRune(r)
		n++
		if n == maxNameLength {
			break
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return fallback
	}
	return out
}

func Render(b Battle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	drawBackground(img)

	drawText(img, "DICE BATTLE", Width/2, 6, 3, textColor)
	drawText(img, "VS", Width/2, 110, 4, vsColor)

	winner := b.Winner()
	drawSide(img, PlayerX, b.Player, Printable(b.Player.Name, "PLAYER"), winner == PlayerWins)
	drawSide(img, BotX, b.Bot, Printable(b.Bot.Name, "BOT"), winner == BotWins)

	return img
}

// EncodePNG renders the battle and encodes it as PNG
func EncodePNG(b Battle) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(b)); err != nil {
		return nil, errors.Wrap(err, "failed to encode dice battle image")
	}

	return buf.Bytes(), nil
}

// drawBackground fills img with a vertical gradient that darkens towards the bottom
func drawBackground(img *image.RGBA) {
	for y := 0; y < Height; y++ {
		factor := 1 - 0.3*float64(y)/float64(Height)
		row := color.RGBA{
			R: uint8(float64(backgroundColor.R) * factor),
			G: uint8(float64(backgroundColor.G) * factor),
			B: uint8(float64(backgroundColor.B) * factor),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, Width, y+1), image.NewUniform(row), image.Point{}, draw.Src)
	}
}

func drawSide(img *image.RGBA, centerX int, side Side, name string, won bool) {
	avatarRect := image.Rect(centerX-AvatarSize/2, AvatarY, centerX+AvatarSize/2, AvatarY+AvatarSize)
	drawAvatar(img, avatarRect, side.Avatar)

	if won {
		center := image.Pt(centerX, AvatarY+AvatarSize/2)
		for i := 0; i < 3; i++ {
			glow := color.NRGBA{255, 215, 0, uint8(200 - i*60)}
			r := &ring{p: center, inner: AvatarSize/2 + i*3, outer: AvatarSize/2 + i*3 + 2}
			draw.DrawMask(img, r.Bounds(), image.NewUniform(glow), image.Point{}, r, r.Bounds().Min, draw.Over)
		}
	}

	drawText(img, name, centerX, nameY, 2, textColor)

	dieRect := image.Rect(centerX-DieSize/2, DieY, centerX+DieSize/2, DieY+DieSize)
	drawDie(img, dieRect, side.Die)

	drawText(img, itoa(side.Die), centerX+DieSize/2+24, DieY+DieSize/2-13, 2, numberColor)
}

func drawAvatar(img *image.RGBA, rect image.Rectangle, avatar image.Image) {
	local := &circle{p: image.Pt(AvatarSize/2, AvatarSize/2), r: AvatarSize / 2}

	if avatar == nil {
		draw.DrawMask(img, rect, image.NewUniform(placeholderOuter), image.Point{}, local, image.Point{}, draw.Over)
		inner := &circle{p: image.Pt(AvatarSize/2, AvatarSize/2), r: AvatarSize/2 - 10}
		draw.DrawMask(img, rect, image.NewUniform(placeholderInner), image.Point{}, inner, image.Point{}, draw.Over)
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), avatar, avatar.Bounds(), draw.Src, nil)
	draw.DrawMask(img, rect, scaled, image.Point{}, local, image.Point{}, draw.Over)
}

func drawDie(img *image.RGBA, rect image.Rectangle, value int) {
	draw.Draw(img, rect, image.NewUniform(pipColor), image.Point{}, draw.Src)
	draw.Draw(img, rect.Inset(2), image.NewUniform(dieColor), image.Point{}, draw.Src)

	for _, p := range pips[value] {
		pip := &circle{p: rect.Min.Add(p), r: 4}
		draw.DrawMask(img, pip.Bounds(), image.NewUniform(pipColor), image.Point{}, pip, pip.Bounds().Min, draw.Over)
	}
}

// drawText draws s horizontally centered on centerX with its top at top, scaled up by scale, over a drop shadow
func drawText(img *image.RGBA, s string, centerX, top, scale int, c color.Color) {
	face := basicfont.Face7x13

	width := font.MeasureString(face, s).Ceil()
	if width == 0 {
		return
	}
	height := face.Height

	for _, layer := range []struct {
		offset int
		color  color.Color
	}{
		{offset: scale, color: shadowColor},
		{offset: 0, color: c},
	} {
		small := image.NewRGBA(image.Rect(0, 0, width, height))
		drawer := &font.Drawer{
			Dst:  small,
			Src:  image.NewUniform(layer.color),
			Face: face,
			Dot:  fixed.P(0, face.Ascent),
		}
		drawer.DrawString(s)

		x := centerX - width*scale/2 + layer.offset
		y := top + layer.offset
		dst := image.Rect(x, y, x+width*scale, y+height*scale)
		draw.NearestNeighbor.Scale(img, dst, small, small.Bounds(), draw.Over, nil)
	}
}

func itoa(n int) string {
	if n < 0 || n > 9 {
		return "?"
	}
	return string(rune('0' + n))
}

// circle is an alpha mask of a filled circle
type circle struct {
	p image.Point
	r int
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(c.p.X-c.r, c.p.Y-c.r, c.p.X+c.r, c.p.Y+c.r)
}

func (c *circle) At(x, y int) color.Color {
	xx, yy, rr := float64(x-c.p.X)+0.5, float64(y-c.p.Y)+0.5, float64(c.r)
	if xx*xx+yy*yy < rr*rr {
		return color.Alpha{255}
	}
	return color.Alpha{0}
}

// ring is an alpha mask of the area between two circles
type ring struct {
	p            image.Point
	inner, outer int
}

func (r *ring) ColorModel() color.Model {
	return color.AlphaModel
}

func (r *ring) Bounds() image.Rectangle {
	return image.Rect(r.p.X-r.outer, r.p.Y-r.outer, r.p.X+r.outer, r.p.Y+r.outer)
}

func (r *ring) At(x, y int) color.Color {
	xx, yy := float64(x-r.p.X)+0.5, float64(y-r.p.Y)+0.5
	d := xx*xx + yy*yy
	if d >= float64(r.inner*r.inner) && d < float64(r.outer*r.outer) {
		return color.Alpha{255}
	}
	return color.Alpha{0}
}
