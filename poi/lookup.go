package poi

import (
	"fmt"
	"strings"
	"time"

	"github.com/fzft/go-chaintable/db"
	"github.com/fzft/go-chaintable/log"
	"go.uber.org/zap"
)

type Point struct {
	X, Y int
}

// Manhattan computes the manhattan distance between a and b.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Projection maps coordinates inside a bounding box linearly onto a
// Width x Height pixel map.
type Projection struct {
	LatNorth, LatSouth int32
	LonWest, LonEast   int32
	Width, Height      int
}

// DefaultProjection covers the map the restaurant data was collected for.
var DefaultProjection = Projection{
	LatNorth: 5361858,
	LatSouth: 5340953,
	LonWest:  -11368652,
	LonEast:  -11333496,
	Width:    2048,
	Height:   2048,
}

func (p Projection) LatToY(lat int32) int {
	return int(int64(lat-p.LatNorth) * int64(p.Height) / int64(p.LatSouth-p.LatNorth))
}

func (p Projection) LonToX(lon int32) int {
	return int(int64(lon-p.LonWest) * int64(p.Width) / int64(p.LonEast-p.LonWest))
}

// Point returns the map position of r.
func (p Projection) Point(r Restaurant) Point {
	return Point{X: p.LonToX(r.Lon), Y: p.LatToY(r.Lat)}
}

// Stars converts a 0..10 rating into 1..5 stars.
func Stars(rating uint8) int {
	stars := (int(rating) + 1) / 2
	if stars < 1 {
		stars = 1
	}
	return stars
}

type SortAlgorithm int

const (
	SortQuick SortAlgorithm = iota
	SortInsertion
	SortBoth // run both on the same candidates, keep the insertion sort result
)

func ParseSortAlgorithm(s string) (SortAlgorithm, error) {
	switch strings.ToLower(s) {
	case "qsort", "quick":
		return SortQuick, nil
	case "isort", "insertion":
		return SortInsertion, nil
	case "both":
		return SortBoth, nil
	}
	return 0, fmt.Errorf("unknown sort algorithm %q", s)
}

type Query struct {
	At        Point
	MinStars  int
	Algorithm SortAlgorithm
	Limit     int // 0 returns every candidate
}

// Lookup ranks the restaurants on a device by distance.
type Lookup struct {
	cache *RecordCache
	count int
	proj  Projection
}

// NewLookup searches records 0..count-1 of cache.
func NewLookup(cache *RecordCache, count int, proj Projection) *Lookup {
	return &Lookup{cache: cache, count: count, proj: proj}
}

// Get returns the i'th restaurant.
func (l *Lookup) Get(i int) (Restaurant, error) {
	return l.cache.Get(i)
}

// candidates collects every rated-enough restaurant with its distance.
func (l *Lookup) candidates(q Query) (*db.Table[RestDist], error) {
	table := db.New[RestDist](db.WithLogger(log.Logger))
	for i := 0; i < l.count; i++ {
		r, err := l.cache.Get(i)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if r.IsZero() || Stars(r.Rating) < q.MinStars {
			continue
		}
		table.Insert(RestDist{Index: i, Dist: Manhattan(l.proj.Point(r), q.At)})
	}
	return table, nil
}

// Nearby returns the restaurants with at least q.MinStars stars, closest
// to q.At first.
func (l *Lookup) Nearby(q Query) ([]RestDist, error) {
	table, err := l.candidates(q)
	if err != nil {
		return nil, err
	}
	rs := table.Items()

	switch q.Algorithm {
	case SortQuick:
		timeSort("qsort", rs, QuickSort)
	case SortInsertion:
		timeSort("isort", rs, InsertionSort)
	case SortBoth:
		timeSort("qsort", append([]RestDist(nil), rs...), QuickSort)
		timeSort("isort", rs, InsertionSort)
	default:
		return nil, fmt.Errorf("unknown sort algorithm %d", q.Algorithm)
	}

	if q.Limit > 0 && q.Limit < len(rs) {
		rs = rs[:q.Limit]
	}
	return rs, nil
}

func timeSort(name string, rs []RestDist, sort func([]RestDist)) {
	start := time.Now()
	sort(rs)
	log.Logger.Info(name,
		zap.Int("restaurants", len(rs)),
		zap.Duration("took", time.Since(start)))
}
