package surfacesample

import (
	"math"
	"math/rand"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/quadra-mesh/quadra/meshgraph"
)

const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand, mirroring package tsp's
// seed==0-means-default policy.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Triangle is a plain three-point snapshot of one alive face, taken once so
// sampling and nearest-point queries don't need to reach back into a Mesh.
type Triangle struct {
	P0, P1, P2 geom.Vec3
}

// Triangles snapshots every alive face of mesh as a Triangle.
func Triangles(mesh *meshgraph.Mesh) ([]Triangle, error) {
	faceIDs := mesh.AliveFaceIDs()
	out := make([]Triangle, 0, len(faceIDs))
	for _, fid := range faceIDs {
		f, err := mesh.Face(fid)
		if err != nil {
			return nil, err
		}
		var p [3]geom.Vec3
		for i, vid := range f.V {
			v, err := mesh.Vertex(vid)
			if err != nil {
				return nil, err
			}
			p[i] = v.Position
		}
		out = append(out, Triangle{P0: p[0], P1: p[1], P2: p[2]})
	}

	return out, nil
}

func triangleArea(t Triangle) float64 {
	return t.P1.Sub(t.P0).Cross(t.P2.Sub(t.P0)).Len() * 0.5
}

// SamplePoints draws n points from the area-weighted surface of triangles,
// using rng (or a default deterministic stream if rng is nil). Degenerate
// (zero-area) triangles never get picked. Returns nil, without error, for
// an empty or fully-degenerate triangle set — callers treat 0 samples as
// "no surface to compare".
func SamplePoints(triangles []Triangle, n int, rng *rand.Rand) []geom.Vec3 {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	areas := make([]float64, len(triangles))
	var total float64
	for i, t := range triangles {
		areas[i] = triangleArea(t)
		total += areas[i]
	}
	if total <= 0 {
		return nil
	}

	cumulative := make([]float64, len(areas))
	running := 0.0
	for i, a := range areas {
		running += a
		cumulative[i] = running
	}

	points := make([]geom.Vec3, 0, n)
	for i := 0; i < n; i++ {
		target := rng.Float64() * total
		idx := pickByCumulative(cumulative, target)
		points = append(points, randomPointInTriangle(triangles[idx], rng))
	}

	return points
}

func pickByCumulative(cumulative []float64, target float64) int {
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumulative[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// randomPointInTriangle draws a uniformly-distributed point inside t using
// the parallelogram-reflection method: for u, v ~ U(0,1), reflecting the
// pair across u+v=1 maps the unit square onto the triangle without bias.
func randomPointInTriangle(t Triangle, rng *rand.Rand) geom.Vec3 {
	u, v := rng.Float64(), rng.Float64()
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	w := 1 - u - v

	return geom.Vec3{
		w*t.P0[0] + u*t.P1[0] + v*t.P2[0],
		w*t.P0[1] + u*t.P1[1] + v*t.P2[1],
		w*t.P0[2] + u*t.P1[2] + v*t.P2[2],
	}
}

// NearestDistance returns the Euclidean distance from p to the closest
// point on any triangle in triangles, via brute-force scan. Returns
// +Inf if triangles is empty.
func NearestDistance(p geom.Vec3, triangles []Triangle) float64 {
	best := math.Inf(1)
	for _, t := range triangles {
		d := p.Sub(closestPointOnTriangle(p, t)).Len()
		if d < best {
			best = d
		}
	}

	return best
}

// closestPointOnTriangle projects p onto triangle t, clamped to the
// triangle's interior, following the region-test method of Ericson's
// "Real-Time Collision Detection" §5.1.5.
func closestPointOnTriangle(p geom.Vec3, t Triangle) geom.Vec3 {
	a, b, c := t.P0, t.P1, t.P2
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)

		return a.Add(ab.Mul(v))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)

		return a.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))

		return b.Add(c.Sub(b).Mul(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom

	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// SymmetricSurfaceError draws nSamples points from each of a and b, finds
// each sample's nearest distance to the other mesh's surface, and returns
// the mean of all squared distances from both directions combined.
// Grounded directly on original_source/utils/eval.py's
// symmetric_surface_error.
func SymmetricSurfaceError(a, b []Triangle, nSamples int, rng *rand.Rand) float64 {
	samplesA := SamplePoints(a, nSamples, rng)
	samplesB := SamplePoints(b, nSamples, rng)
	if len(samplesA) == 0 || len(samplesB) == 0 {
		return 0
	}

	var sum float64
	for _, p := range samplesA {
		d := NearestDistance(p, b)
		sum += d * d
	}
	for _, p := range samplesB {
		d := NearestDistance(p, a)
		sum += d * d
	}

	return sum / float64(len(samplesA)+len(samplesB))
}
