package world

import (
	"math"
	"sort"
)

// RepairParams are the limits Repair enforces.
type RepairParams struct {
	MaxGap       float64 // Largest horizontal gap the player can clear
	MinWidth     float64 // Narrowest elevated platform allowed
	MinY         float64 // Highest elevated platform (smallest y)
	MaxY         float64 // Lowest elevated platform (largest y)
	BridgeHeight float64 // Thickness of inserted bridges
}

// Repair returns a copy of platforms sorted by x and made traversable:
//   - elevated platforms are widened to MinWidth,
//   - elevated platforms have y clamped into [MinY, MaxY],
//   - wherever the gap from one platform's right edge to the next platform's
//     left edge exceeds MaxGap, bridges of MinWidth are inserted MaxGap past
//     the previous right edge until the remaining gap fits.
//
// Repair is idempotent: its output passes through unchanged.
func Repair(platforms []Platform, p RepairParams) []Platform {
	sorted := make([]Platform, len(platforms))
	copy(sorted, platforms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	out := make([]Platform, 0, len(sorted))
	haveLast := false
	var lastRight, lastY float64

	for _, plat := range sorted {
		if plat.Kind != KindGround {
			plat.W = math.Max(plat.W, p.MinWidth)
			plat.Y = p.clampY(plat.Y)
		}

		if haveLast && p.MaxGap+p.MinWidth > 0 {
			for plat.X-lastRight > p.MaxGap {
				bridge := NewPlatform(p.bridgeX(lastRight), p.bridgeY(lastY, plat.Y), p.MinWidth, p.BridgeHeight)
				out = append(out, bridge)
				lastRight = bridge.Right()
				lastY = bridge.Y
			}
		}

		out = append(out, plat)
		haveLast = true
		lastRight = plat.Right()
		lastY = plat.Y
	}

	return out
}

// MaxGapOf returns the widest gap between consecutive platforms, in order.
// Overlapping neighbours contribute negative gaps.
func MaxGapOf(platforms []Platform) float64 {
	widest := math.Inf(-1)
	for i := 1; i < len(platforms); i++ {
		gap := platforms[i].X - platforms[i-1].Right()
		if gap > widest {
			widest = gap
		}
	}
	return widest
}

func (p RepairParams) clampY(y float64) float64 {
	return math.Max(p.MinY, math.Min(p.MaxY, y))
}

// bridgeX places a bridge MaxGap past lastRight. The sum can round up, so
// it is nudged down until the gap it leaves measures at most MaxGap.
func (p RepairParams) bridgeX(lastRight float64) float64 {
	x := lastRight + p.MaxGap
	for x-lastRight > p.MaxGap {
		x = math.Nextafter(x, math.Inf(-1))
	}
	return x
}

// bridgeY places a bridge halfway between its neighbours, truncated toward
// zero like the whole-unit layouts it sits between.
func (p RepairParams) bridgeY(prevY, nextY float64) float64 {
	return p.clampY(math.Trunc((prevY + nextY) / 2))
}
