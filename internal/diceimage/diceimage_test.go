package diceimage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	qt "github.com/frankban/quicktest"
)

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestWinner(t *testing.T) {
	tests := []struct {
		player, bot int
		expected    Winner
	}{
		{6, 1, PlayerWins},
		{1, 6, BotWins},
		{3, 3, Tie},
	}

	c := qt.New(t)
	for _, test := range tests {
		b := Battle{Player: Side{Die: test.player}, Bot: Side{Die: test.bot}}
		c.Assert(b.Winner(), qt.Equals, test.expected)
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", "forsen", "forsen"},
		{"truncated", "averyveryverylongname", "averyveryver"},
		{"mixed", "أحمد pajlada", "pajlada"},
		{"nothing printable", "أحمد", "PLAYER"},
		{"empty", "", "PLAYER"},
	}

	c := qt.New(t)
	for _, test := range tests {
		c.Assert(Printable(test.input, "PLAYER"), qt.Equals, test.expected, qt.Commentf("%s", test.name))
	}
}

func TestRender(t *testing.T) {
	c := qt.New(t)

	red := color.RGBA{255, 0, 0, 255}
	img := Render(Battle{
		Player: Side{Name: "forsen", Avatar: solid(red), Die: 1},
		Bot:    Side{Name: "bankbot", Die: 6},
	})

	c.Assert(img.Bounds(), qt.Equals, image.Rect(0, 0, Width, Height))

	// player avatar is clipped to a circle
	center := rgba(img, PlayerX, AvatarY+AvatarSize/2)
	c.Assert(center.R > 250 && center.G < 5 && center.B < 5, qt.IsTrue, qt.Commentf("%v", center))
	c.Assert(rgba(img, PlayerX-AvatarSize/2, AvatarY).R < 200, qt.IsTrue)

	// bot has no avatar, the placeholder is drawn
	c.Assert(rgba(img, BotX, AvatarY+AvatarSize/2), qt.Equals, placeholderInner)
	c.Assert(rgba(img, BotX, AvatarY+3), qt.Equals, placeholderOuter)

	// a one has a single pip in the middle, a six has none there
	c.Assert(rgba(img, PlayerX, DieY+DieSize/2), qt.Equals, pipColor)
	c.Assert(rgba(img, PlayerX-15, DieY+15), qt.Equals, dieColor)
	c.Assert(rgba(img, BotX, DieY+DieSize/2), qt.Equals, dieColor)
	c.Assert(rgba(img, BotX-15, DieY+15), qt.Equals, pipColor)
}

func TestRenderWinnerGlow(t *testing.T) {
	c := qt.New(t)

	// just outside the avatar circle, above its center
	const glowY = AvatarY - 1

	img := Render(Battle{Player: Side{Die: 5}, Bot: Side{Die: 2}})
	c.Assert(rgba(img, PlayerX, glowY).G > rgba(img, BotX, glowY).G, qt.IsTrue)

	img = Render(Battle{Player: Side{Die: 2}, Bot: Side{Die: 5}})
	c.Assert(rgba(img, BotX, glowY).G > rgba(img, PlayerX, glowY).G, qt.IsTrue)
}

func TestEncodePNG(t *testing.T) {
	c := qt.New(t)

	data, err := EncodePNG(Battle{Player: Side{Die: 4}, Bot: Side{Die: 4}})
	c.Assert(err, qt.IsNil)

	img, err := png.Decode(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)
	c.Assert(img.Bounds().Dx(), qt.Equals, Width)
	c.Assert(img.Bounds().Dy(), qt.Equals, Height)
}
