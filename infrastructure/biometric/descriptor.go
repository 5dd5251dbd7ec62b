package biometric

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"certverify.io/infrastructure/logger"
)

// DescriptorLength is the fixed size of every face descriptor.
const DescriptorLength = 128

// neutralValue fills padding and replaces values that could not be computed.
const neutralValue = 0.5

// edgeThreshold is the luma gradient magnitude above which a pixel counts as an edge.
const edgeThreshold = 20.0

const histogramBuckets = 10

// Descriptor is a coarse colour/edge/texture statistic of a captured image.
// It is not a trained face embedding.
type Descriptor []float64

// Pixels is a row-major, non-premultiplied RGBA grid with 4 bytes per pixel.
type Pixels struct {
	Width  int
	Height int
	Pix    []uint8
}

// PixelsFromImage copies img into an RGBA grid.
func PixelsFromImage(img image.Image) *Pixels {
	if img == nil {
		return &Pixels{}
	}
	bounds := img.Bounds()
	p := &Pixels{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, 0, bounds.Dx()*bounds.Dy()*4),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			p.Pix = append(p.Pix, c.R, c.G, c.B, c.A)
		}
	}
	return p
}

func (p *Pixels) at(x, y int) (r, g, b, a float64) {
	i := (y*p.Width + x) * 4
	return float64(p.Pix[i]), float64(p.Pix[i+1]), float64(p.Pix[i+2]), float64(p.Pix[i+3])
}

func (p *Pixels) luma(x, y int) float64 {
	r, g, b, _ := p.at(x, y)
	return 0.299*r + 0.587*g + 0.114*b
}

func (p *Pixels) empty() bool {
	return p == nil || p.Width <= 0 || p.Height <= 0 || len(p.Pix) < p.Width*p.Height*4
}

// NeutralDescriptor returns the fallback descriptor used when no features can be derived.
func NeutralDescriptor() Descriptor {
	d := make(Descriptor, DescriptorLength)
	for i := range d {
		d[i] = neutralValue
	}
	return d
}

// IsNeutral reports whether d is the fallback descriptor.
func IsNeutral(d Descriptor) bool {
	if len(d) != DescriptorLength {
		return false
	}
	for _, v := range d {
		if v != neutralValue {
			return false
		}
	}
	return true
}

// Vector returns a copy of d suitable for persistence.
func (d Descriptor) Vector() []float64 {
	out := make([]float64, len(d))
	copy(out, d)
	return out
}

// Extract derives a descriptor from the pixel grid. Zero-area input, or any
// failure while computing features, yields NeutralDescriptor.
func Extract(p *Pixels) (descriptor Descriptor) {
	if p.empty() {
		logger.Warning("descriptor extraction on empty pixel grid, using neutral descriptor")
		return NeutralDescriptor()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("descriptor extraction failed, using neutral descriptor", logger.LoggerOptions{
				Key:  "error",
				Data: fmt.Sprint(r),
			})
			descriptor = NeutralDescriptor()
		}
	}()

	b := newDescriptorBuilder()
	total := float64(p.Width * p.Height)

	var sum, lo, hi [4]float64
	var hist [3][histogramBuckets]float64
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, bl, a := p.at(x, y)
			for c, v := range [4]float64{r, g, bl, a} {
				sum[c] += v
				lo[c] = math.Min(lo[c], v)
				hi[c] = math.Max(hi[c], v)
				if c < 3 {
					hist[c][bucket(v)]++
				}
			}
		}
	}

	// channel means
	for c := 0; c < 4; c++ {
		b.add(sum[c] / total / 255)
	}

	// ranges then minima
	for c := 0; c < 3; c++ {
		b.add((hi[c] - lo[c]) / 255)
	}
	for c := 0; c < 3; c++ {
		b.add(lo[c] / 255)
	}

	for i := 0; i < histogramBuckets; i++ {
		for c := 0; c < 3; c++ {
			b.add(hist[c][i] / total)
		}
	}

	edgeCount, edgeStrength := edgeSignal(p)
	b.add(edgeCount / total)
	b.add(edgeStrength / total / 255)

	halfW, halfH := p.Width/2, p.Height/2
	quadrants := []image.Rectangle{
		image.Rect(0, 0, halfW, halfH),
		image.Rect(halfW, 0, p.Width, halfH),
		image.Rect(0, halfH, halfW, p.Height),
		image.Rect(halfW, halfH, p.Width, p.Height),
	}
	for _, q := range quadrants {
		mr, mg, mb, n := regionMeans(p, q)
		b.add(mr / 255)
		b.add(mg / 255)
		b.add(mb / 255)
		b.add(n / total)
	}

	for c := 0; c < 3; c++ {
		mean := sum[c] / total
		var sq float64
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				r, g, bl, _ := p.at(x, y)
				v := [3]float64{r, g, bl}[c]
				sq += (v - mean) * (v - mean)
			}
		}
		b.add(math.Sqrt(sq/total) / 255)
	}

	for gy := 0; gy < 4; gy++ {
		for gx := 0; gx < 4; gx++ {
			cell := image.Rect(gx*p.Width/4, gy*p.Height/4, (gx+1)*p.Width/4, (gy+1)*p.Height/4)
			mr, _, _, n := regionMeans(p, cell)
			if n == 0 {
				b.add(neutralValue)
				continue
			}
			b.add(mr / 255)
		}
	}

	return b.build()
}

func bucket(v float64) int {
	i := int(v * histogramBuckets / 256)
	if i >= histogramBuckets {
		i = histogramBuckets - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// edgeSignal counts forward-difference luma gradients above edgeThreshold and
// sums every gradient magnitude.
func edgeSignal(p *Pixels) (count, strength float64) {
	for y := 0; y < p.Height-1; y++ {
		for x := 0; x < p.Width-1; x++ {
			l := p.luma(x, y)
			gx := p.luma(x+1, y) - l
			gy := p.luma(x, y+1) - l
			m := math.Sqrt(gx*gx + gy*gy)
			strength += m
			if m > edgeThreshold {
				count++
			}
		}
	}
	return count, strength
}

// regionMeans returns the mean R, G, B over rect and its pixel count. Means are
// NaN for an empty region.
func regionMeans(p *Pixels, rect image.Rectangle) (r, g, b, n float64) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			pr, pg, pb, _ := p.at(x, y)
			r += pr
			g += pg
			b += pb
			n++
		}
	}
	return r / n, g / n, b / n, n
}

type descriptorBuilder struct {
	values Descriptor
}

func newDescriptorBuilder() *descriptorBuilder {
	return &descriptorBuilder{values: make(Descriptor, 0, DescriptorLength)}
}

func (b *descriptorBuilder) add(v float64) {
	b.values = append(b.values, clamp(v))
}

func (b *descriptorBuilder) build() Descriptor {
	for len(b.values) < DescriptorLength {
		b.values = append(b.values, neutralValue)
	}
	return b.values[:DescriptorLength]
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return neutralValue
	}
	return math.Max(0, math.Min(1, v))
}
