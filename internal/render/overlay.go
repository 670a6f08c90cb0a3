// Package render draws per-map PNG overlays of classified warps for
// visual review.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/capturequest/warpclass/internal/batch"
	"github.com/capturequest/warpclass/internal/logger"
	"github.com/capturequest/warpclass/pkg/warp"
)

// tilePx is the rendered size of one map tile.
const tilePx = 16

// Overlay tints: doors blue, dest_warp carpets green, edge carpets orange.
var (
	background = image.NewUniform(color.NRGBA{16, 16, 16, 255})
	gridLine   = image.NewUniform(color.NRGBA{32, 32, 32, 255})
	doorTint   = image.NewUniform(color.NRGBA{0, 0, 255, 128})
	destTint   = image.NewUniform(color.NRGBA{0, 255, 0, 128})
	edgeTint   = image.NewUniform(color.NRGBA{255, 128, 0, 128})
	white      = image.NewUniform(color.RGBA{255, 255, 255, 255})
)

// RenderAll writes one PNG per map that has classified warps. Map
// dimensions come from the events themselves; events without them are
// logged and skipped.
func RenderAll(dir string, results []batch.Classification) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating overlay dir: %w", err)
	}

	var names []string
	byMap := make(map[string][]batch.Classification)
	for _, c := range results {
		if _, ok := byMap[c.Map]; !ok {
			names = append(names, c.Map)
		}
		byMap[c.Map] = append(byMap[c.Map], c)
	}

	for _, name := range names {
		warps := byMap[name]
		info := warp.MapInfo{Width: warps[0].Width, Height: warps[0].Height}
		if info.Width <= 0 || info.Height <= 0 {
			logger.Warn("missing map dimensions, skipping overlay", zap.String("map", name))
			continue
		}
		img := Overlay(info, name, warps)
		path := filepath.Join(dir, name+".png")
		if err := writePNG(path, img); err != nil {
			return err
		}
		logger.Debug("overlay written", zap.String("map", name), zap.Int("warps", len(warps)))
	}
	return nil
}

// Overlay draws one map's classified warps. Carpets are labeled with the
// initial of their required direction.
func Overlay(info warp.MapInfo, name string, warps []batch.Classification) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, info.TileWidth()*tilePx, info.TileHeight()*tilePx))
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)
	drawGrid(img)

	for _, c := range warps {
		tint := doorTint
		if c.Kind == warp.Carpet {
			tint = destTint
			if c.Method == warp.ByEdge {
				tint = edgeTint
			}
		}

		x, y := c.X*tilePx, c.Y*tilePx
		draw.Draw(img, image.Rect(x, y, x+tilePx, y+tilePx), tint, image.Point{}, draw.Over)
		drawOutlineBox(img, tint, x, y, tilePx, tilePx)

		if c.Kind == warp.Carpet && c.Direction != "" {
			label := string(c.Direction[0])
			drawShadowedString(img, white,
				fixed.Point26_6{X: fixed.I(x + 4), Y: fixed.I(y + 13)}, label)
		}
	}

	drawShadowedString(img, white, fixed.Point26_6{X: fixed.I(2), Y: fixed.I(14)}, name)
	return img
}

// drawGrid marks block boundaries; one block covers 2x2 tiles.
func drawGrid(g *image.NRGBA) {
	b := g.Bounds()
	for x := 0; x < b.Dx(); x += 2 * tilePx {
		draw.Draw(g, image.Rect(x, 0, x+1, b.Dy()), gridLine, image.Point{}, draw.Src)
	}
	for y := 0; y < b.Dy(); y += 2 * tilePx {
		draw.Draw(g, image.Rect(0, y, b.Dx(), y+1), gridLine, image.Point{}, draw.Src)
	}
}

func drawShadowedString(g draw.Image, clr image.Image, dot fixed.Point26_6, s string) {
	(&font.Drawer{
		Dst:  g,
		Src:  image.Black,
		Face: inconsolata.Regular8x16,
		Dot:  fixed.Point26_6{X: dot.X + fixed.I(1), Y: dot.Y + fixed.I(1)},
	}).DrawString(s)
	(&font.Drawer{
		Dst:  g,
		Src:  clr,
		Face: inconsolata.Regular8x16,
		Dot:  dot,
	}).DrawString(s)
}

func drawOutlineBox(g draw.Image, clr image.Image, x, y, w, h int) {
	draw.Draw(g, image.Rect(x, y, x+w, y+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x+w-1, y, x+w, y+h), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x, y+h-1, x+w, y+h), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x, y, x+1, y+h), clr, image.Point{}, draw.Over)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
