package chart

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"

	"github.com/drake/termchart/canvas"
	"github.com/drake/termchart/layout"
)

// digest folds config fields into an FNV-1a accumulator in a fixed order,
// so the same logical config always hashes the same regardless of how it
// was built.
type digest struct {
	h   hash.Hash32
	buf [8]byte
}

func newDigest() *digest {
	return &digest{h: fnv.New32a()}
}

func (f *digest) u32(v uint32) {
	binary.LittleEndian.PutUint32(f.buf[:4], v)
	f.h.Write(f.buf[:4])
}

func (f *digest) f64(v float64) {
	binary.LittleEndian.PutUint64(f.buf[:], math.Float64bits(v))
	f.h.Write(f.buf[:])
}

func (f *digest) boolean(b bool) {
	if b {
		f.h.Write([]byte{1})
	} else {
		f.h.Write([]byte{0})
	}
}

func (f *digest) color(c layout.Color) {
	f.h.Write([]byte{c.R, c.G, c.B, c.A})
}

func (f *digest) sum() uint32 {
	return f.h.Sum32()
}

// Fingerprint digests every PieConfig field that affects the rasterized
// segment image: data values and explode flags, geometry, start angle,
// the color mode and its payload, and sector line settings. Labels, legend
// visibility, and the container background are layout concerns and are
// deliberately excluded, so configs that rasterize identically share a
// fingerprint.
func Fingerprint(cfg PieConfig) uint32 {
	f := newDigest()
	for _, d := range cfg.Data {
		f.f64(d.Value)
		f.boolean(d.Exploded)
	}
	f.f64(cfg.Radius)
	f.f64(cfg.HoleRadius)
	f.f64(cfg.ExplodeDistance)
	f.f64(cfg.StartAngle)
	cfg.mode().fold(f, cfg.Data)
	f.boolean(cfg.ShowSectorLines)
	f.color(cfg.SectorLineColor)
	return f.sum()
}

// CachedImage is a retained offscreen render plus the fingerprint and cell
// dimensions it was generated for.
type CachedImage struct {
	Image       *canvas.Image
	Fingerprint uint32
	Width       int
	Height      int
}

// SegmentCache holds at most one rasterized segment image per chart
// instance. It starts empty, becomes valid after the first Install, and a
// stale image is detected by ShouldRegenerate and replaced in the same
// frame by the caller.
type SegmentCache struct {
	cached *CachedImage
}

// Empty reports whether no image has been installed yet (or the cache was
// released).
func (c *SegmentCache) Empty() bool {
	return c.cached == nil
}

// ShouldRegenerate reports whether the cached image is stale for the given
// config and requested cell dimensions: no image yet, a fingerprint
// mismatch, or a dimension mismatch. Reuse is the common case on repeated
// frames with unchanged data.
func (c *SegmentCache) ShouldRegenerate(cfg PieConfig, width, height int) bool {
	if c.cached == nil {
		return true
	}
	if c.cached.Fingerprint != Fingerprint(cfg) {
		return true
	}
	return c.cached.Width != width || c.cached.Height != height
}

// Install replaces the cached image wholesale. The previous handle is
// dropped, so at most one image is live per cache.
func (c *SegmentCache) Install(img *canvas.Image, fingerprint uint32, width, height int) {
	c.cached = &CachedImage{
		Image:       img,
		Fingerprint: fingerprint,
		Width:       width,
		Height:      height,
	}
}

// Image returns the live image, or nil when the cache is empty.
func (c *SegmentCache) Image() *canvas.Image {
	if c.cached == nil {
		return nil
	}
	return c.cached.Image
}

// release drops the cached image, returning the cache to its empty state.
func (c *SegmentCache) release() {
	c.cached = nil
}
