package biometric

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPixels(w, h int, c color.NRGBA) *Pixels {
	p := &Pixels{Width: w, Height: h}
	for i := 0; i < w*h; i++ {
		p.Pix = append(p.Pix, c.R, c.G, c.B, c.A)
	}
	return p
}

func patternPixels(w, h int) *Pixels {
	p := &Pixels{Width: w, Height: h}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Pix = append(p.Pix, uint8(x*37+y*11), uint8(x*y*7), uint8(255-x*13), uint8(200+x%50))
		}
	}
	return p
}

func TestExtractSolidColour(t *testing.T) {
	d := Extract(solidPixels(4, 4, color.NRGBA{R: 255, A: 255}))
	require.Len(t, d, DescriptorLength)

	assert.Equal(t, []float64{1, 0, 0, 1}, []float64(d[0:4]), "channel means")
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0}, []float64(d[4:10]), "ranges and minima")

	for i := 10; i < 40; i++ {
		switch i {
		case 10 + 9*3, 10 + 1, 10 + 2:
			assert.Equal(t, 1.0, d[i], "histogram %d", i)
		default:
			assert.Equal(t, 0.0, d[i], "histogram %d", i)
		}
	}

	assert.Equal(t, []float64{0, 0}, []float64(d[40:42]), "edge signal")
	for q := 0; q < 4; q++ {
		assert.Equal(t, []float64{1, 0, 0, 0.25}, []float64(d[42+q*4:46+q*4]), "quadrant %d", q)
	}
	assert.Equal(t, []float64{0, 0, 0}, []float64(d[58:61]), "std dev")
	for i := 61; i < 77; i++ {
		assert.Equal(t, 1.0, d[i], "grid %d", i)
	}
	for i := 77; i < DescriptorLength; i++ {
		assert.Equal(t, 0.5, d[i], "padding %d", i)
	}
}

func TestExtractEdgeSignal(t *testing.T) {
	p := &Pixels{Width: 4, Height: 4}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				p.Pix = append(p.Pix, 0, 0, 0, 255)
			} else {
				p.Pix = append(p.Pix, 255, 255, 255, 255)
			}
		}
	}
	d := Extract(p)
	assert.InDelta(t, 3.0/16, d[40], 1e-9)
	assert.InDelta(t, 3.0/16, d[41], 1e-9)

	// left quadrants black, right quadrants white
	assert.Equal(t, 0.0, d[42])
	assert.Equal(t, 1.0, d[46])
	assert.Equal(t, 0.5, d[58], "population std dev of a half black half white channel")
}

func TestExtractSinglePixelUsesNeutralForEmptyRegions(t *testing.T) {
	d := Extract(solidPixels(1, 1, color.NRGBA{R: 51, G: 102, B: 153, A: 255}))
	require.Len(t, d, DescriptorLength)

	// only the bottom-right quadrant holds the pixel
	for q := 0; q < 3; q++ {
		assert.Equal(t, []float64{0.5, 0.5, 0.5, 0}, []float64(d[42+q*4:46+q*4]), "quadrant %d", q)
	}
	assert.Equal(t, []float64{0.2, 0.4, 0.6, 1}, []float64(d[54:58]))

	for i := 61; i < 76; i++ {
		assert.Equal(t, 0.5, d[i], "grid %d", i)
	}
	assert.Equal(t, 0.2, d[76])
}

func TestExtractIsDeterministic(t *testing.T) {
	a := Extract(patternPixels(17, 9))
	b := Extract(patternPixels(17, 9))
	assert.Equal(t, a, b)
}

func TestExtractLengthAndRange(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 3}, {5, 5}, {17, 9}, {64, 48}}
	for _, size := range sizes {
		d := Extract(patternPixels(size[0], size[1]))
		require.Len(t, d, DescriptorLength)
		for i, v := range d {
			assert.GreaterOrEqual(t, v, 0.0, "size %v index %d", size, i)
			assert.LessOrEqual(t, v, 1.0, "size %v index %d", size, i)
		}
	}
}

func TestExtractDegenerateInput(t *testing.T) {
	tests := []struct {
		name   string
		pixels *Pixels
	}{
		{name: "nil", pixels: nil},
		{name: "zero area", pixels: &Pixels{}},
		{name: "zero height", pixels: &Pixels{Width: 4}},
		{name: "short buffer", pixels: &Pixels{Width: 2, Height: 2, Pix: []uint8{1, 2, 3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Extract(tt.pixels)
			assert.True(t, IsNeutral(d))
		})
	}
}

func TestPixelsFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(3, 5, 5, 6))
	img.Set(3, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(4, 5, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	p := PixelsFromImage(img)
	assert.Equal(t, 2, p.Width)
	assert.Equal(t, 1, p.Height)
	assert.Equal(t, []uint8{10, 20, 30, 255, 40, 50, 60, 128}, p.Pix)

	assert.True(t, IsNeutral(Extract(PixelsFromImage(nil))))
}

func TestIsNeutral(t *testing.T) {
	assert.True(t, IsNeutral(NeutralDescriptor()))
	assert.False(t, IsNeutral(Descriptor{0.5, 0.5}))

	d := NeutralDescriptor()
	d[100] = 0.4
	assert.False(t, IsNeutral(d))
}
