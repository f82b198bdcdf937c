package collision

import (
	assert "github.com/aurelien-rainone/assertgo"
	"github.com/aurelien-rainone/math32"
)

// Three large, arbitrarily chosen primes used to hash a quantized grid
// cell into a bucket index. Matches the original vertex welder exactly;
// changing them changes which file bytes a given mesh packs to.
const (
	weldMagicX = 0x8DA6B343
	weldMagicY = 0xD8163841
	weldMagicZ = 0x61B40079
)

// welder deduplicates vertices (or normals) that lie within a threshold of
// one another, using a spatial hash over cells 16x the threshold wide. It
// is used once for positions and once for normals during Pack; each
// instance is single-use: create, Add repeatedly, then read back Vertices.
type welder struct {
	threshold  float32
	cellWidth  float32
	buckets    [][]uint32
	vertices   []Vector
}

// newWelder returns a welder with the given threshold and bucket count.
// bucketCount should scale with the expected number of distinct entries;
// Pack uses ceil(N/64) for positions and ceil(4N/64) for normals. The
// bucket count is rounded up to the next power of two, the same sizing
// crowd/proximity_grid.go applies to its own spatial hash table.
func newWelder(threshold float32, bucketCount int) *welder {
	if bucketCount < 1 {
		bucketCount = 1
	}
	n := int(math32.NextPow2(uint32(bucketCount)))
	return &welder{
		threshold: threshold,
		cellWidth: 16 * threshold,
		buckets:   make([][]uint32, n),
	}
}

func (w *welder) cell(v Vector) (ix, iy, iz int32) {
	return int32(v.X / w.cellWidth), int32(v.Y / w.cellWidth), int32(v.Z / w.cellWidth)
}

func (w *welder) hash(ix, iy, iz int32) int {
	h := uint32(ix)*weldMagicX + uint32(iy)*weldMagicY + uint32(iz)*weldMagicZ
	return int(h % uint32(len(w.buckets)))
}

// Add returns the index of the first previously-added vertex within
// threshold (Chebyshev distance) of v, appending v as a new entry and
// returning its index if no such vertex exists.
func (w *welder) Add(v Vector) uint32 {
	minIx := int32((v.X - w.threshold) / w.cellWidth)
	minIy := int32((v.Y - w.threshold) / w.cellWidth)
	minIz := int32((v.Z - w.threshold) / w.cellWidth)
	maxIx := int32((v.X + w.threshold) / w.cellWidth)
	maxIy := int32((v.Y + w.threshold) / w.cellWidth)
	maxIz := int32((v.Z + w.threshold) / w.cellWidth)

	for ix := minIx; ix <= maxIx; ix++ {
		for iy := minIy; iy <= maxIy; iy++ {
			for iz := minIz; iz <= maxIz; iz++ {
				for _, index := range w.buckets[w.hash(ix, iy, iz)] {
					other := w.vertices[index]
					if fAbs(v.X-other.X) < w.threshold &&
						fAbs(v.Y-other.Y) < w.threshold &&
						fAbs(v.Z-other.Z) < w.threshold {
						assert.True(int(index) < len(w.vertices), "welded index must reference an existing vertex")
						return index
					}
				}
			}
		}
	}

	w.vertices = append(w.vertices, v)
	index := uint32(len(w.vertices) - 1)
	ix, iy, iz := w.cell(v)
	b := w.hash(ix, iy, iz)
	w.buckets[b] = append(w.buckets[b], index)
	return index
}

// Vertices returns the ordered, deduplicated list of kept vectors.
func (w *welder) Vertices() []Vector {
	return w.vertices
}
