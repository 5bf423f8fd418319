// Package pick resolves pointer rays against axis-aligned hit boxes.
package pick

import "github.com/chewxy/math32"

// Box is an axis-aligned bounding box.
type Box struct {
	Min [3]float32
	Max [3]float32
}

// BoxAround returns the box centred at center with the given full size.
// Zero size components count as 1, like unit primitives.
func BoxAround(center, size [3]float32) Box {
	var b Box
	for i := 0; i < 3; i++ {
		s := size[i]
		if s == 0 {
			s = 1
		}
		b.Min[i] = center[i] - s*0.5
		b.Max[i] = center[i] + s*0.5
	}
	return b
}

// Ray is a pointer ray in world space. Direction need not be normalized.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32
}

// Hit is a ray/box intersection at parametric distance Distance along the ray.
type Hit struct {
	Distance float32
	Point    [3]float32
}

// Intersect tests r against b with the slab method. A ray starting inside the
// box hits at distance 0.
func Intersect(r Ray, b Box) (Hit, bool) {
	tmin := float32(0)
	tmax := float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if d == 0 {
			if o < b.Min[i] || o > b.Max[i] {
				return Hit{}, false
			}
			continue
		}
		t1 := (b.Min[i] - o) / d
		t2 := (b.Max[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return Hit{}, false
		}
	}
	return Hit{
		Distance: tmin,
		Point: [3]float32{
			r.Origin[0] + r.Direction[0]*tmin,
			r.Origin[1] + r.Direction[1]*tmin,
			r.Origin[2] + r.Direction[2]*tmin,
		},
	}, true
}

// Target is a named clickable region.
type Target struct {
	Name string
	Box  Box
}

// Nearest returns the closest target hit by r.
func Nearest(r Ray, targets []Target) (Target, Hit, bool) {
	var (
		best    Target
		bestHit Hit
		found   bool
	)
	for _, t := range targets {
		h, ok := Intersect(r, t.Box)
		if !ok {
			continue
		}
		if !found || h.Distance < bestHit.Distance {
			best, bestHit, found = t, h, true
		}
	}
	return best, bestHit, found
}
