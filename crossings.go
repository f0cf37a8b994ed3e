package planar

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Result is a network without crossings.
type Result struct {
	*Network

	// Provenance lists for every input segment the output segments it is made of, in increasing order. A piece shared by overlapping input segments is listed for each of them. Dropped degenerate segments have no pieces.
	Provenance [][]int

	// Merged maps every point to the point that replaced it. Input points closer than the tolerance to a lower index are merged into it; they stay in Points so that input indices remain valid, but no segment references them and they are exempt from the minimum point distance. All other points map to themselves.
	Merged []int

	Passes    int // passes over the network, the last one found nothing to split
	NewPoints int // number of points appended to the input points
}

// piece is a segment of the current generation together with the input segments it belongs to.
type piece struct {
	Segment
	origins []int
}

type split struct {
	t     float64
	point int
}

// crossingRemover holds the working state of one RemoveCrossings call. Points only grow; every pass produces a new generation of pieces.
type crossingRemover struct {
	opts   Options
	tol    float64
	points []Point
	index  *pointIndex
	pieces []piece
	merged []int
	added  int
}

// RemoveCrossings returns a network where segments only meet at shared endpoints. Crossing segments are split at a new point, segments that end on another segment split the latter at that endpoint and collinear overlapping segments are replaced by their pieces with the shared piece kept once. This repeats until a pass finds nothing to split, or fails with a ConvergenceError after opts.MaxPasses passes.
//
// Input points keep their index, new points are appended. Input points closer than the tolerance are merged into the lowest index, they remain in the output but are no longer referenced, see Result.Merged. The input network is not modified.
func RemoveCrossings(ctx context.Context, net *Network, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &DefaultOptions
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	} else if err := net.Validate(); err != nil {
		return nil, err
	}

	r := &crossingRemover{opts: o}
	r.init(net)
	if err := r.initPieces(net.Segments); err != nil {
		return nil, err
	}

	for pass := 1; ; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pairs := candidatePairs(r.points, r.segments(), r.tol)
		zs, err := r.classify(ctx, pairs)
		if err != nil {
			return nil, err
		}
		splits, nodes := r.splits(pairs, zs)
		o.Logger.DebugContext(ctx, "crossing removal pass",
			"pass", pass,
			"segments", len(r.pieces),
			"candidates", len(pairs),
			"splits", len(splits),
			"points", len(r.points),
		)

		if len(splits) == 0 {
			r.rebuild(nil)
			res := r.result(len(net.Segments), pass)
			o.Logger.InfoContext(ctx, "crossings removed",
				"passes", pass,
				"segments", len(res.Segments),
				"new_points", res.NewPoints,
			)
			return res, nil
		} else if pass == o.MaxPasses {
			err := r.convergenceError(pass, splits, nodes)
			o.Logger.ErrorContext(ctx, "crossing removal did not converge", "error", err)
			return nil, err
		}
		r.rebuild(splits)
	}
}

func (r *crossingRemover) init(net *Network) {
	r.points = slices.Clone(net.Points)
	if r.opts.Box != nil {
		r.points = SnapToGrid(r.points, *r.opts.Box, r.opts.SnapTolerance)
	}
	r.tol = r.opts.Tolerance * toleranceScale(r.points)
	r.index = newPointIndex(bound(r.points...), r.tol)
}

// initPieces merges coincident input points and builds the first generation.
func (r *crossingRemover) initPieces(segments []Segment) error {
	canonical := make([]int, len(r.points))
	for i, p := range r.points {
		if j := r.index.Find(p); j != -1 {
			canonical[i] = j
		} else {
			r.index.Add(p, i)
			canonical[i] = i
		}
	}

	r.merged = canonical
	r.pieces = make([]piece, len(segments))
	for i, s := range segments {
		s = Segment{canonical[s.A], canonical[s.B], slices.Clone(s.Tags)}
		if s.IsDegenerate() && r.opts.Degenerate == RejectDegenerate {
			return &InputError{What: "segment", Index: i, Reason: ErrDegenerate.Error(), cause: ErrDegenerate}
		}
		r.pieces[i] = piece{s, []int{i}}
	}
	return nil
}

func (r *crossingRemover) segments() []Segment {
	segments := make([]Segment, len(r.pieces))
	for i, p := range r.pieces {
		segments[i] = p.Segment
	}
	return segments
}

func (r *crossingRemover) intersect(pair Pair) Intersection {
	a, b := r.pieces[pair.A], r.pieces[pair.B]
	return IntersectSegments(r.points[a.A], r.points[a.B], r.points[b.A], r.points[b.B], r.tol)
}

// classify intersects all candidate pairs. Results are stored by pair index so the outcome does not depend on the number of workers.
func (r *crossingRemover) classify(ctx context.Context, pairs []Pair) ([]Intersection, error) {
	zs := make([]Intersection, len(pairs))
	workers := r.opts.Workers
	if workers <= 1 || len(pairs) < 2*workers {
		for k, pair := range pairs {
			zs[k] = r.intersect(pair)
		}
		return zs, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (len(pairs) + workers - 1) / workers
	for lo := 0; lo < len(pairs); lo += chunk {
		hi := min(lo+chunk, len(pairs))
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if k%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				zs[k] = r.intersect(pairs[k])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return zs, nil
}

// resolve returns the point index of a node, adding a new point if it is not an endpoint of either segment and no existing point is within tolerance.
func (r *crossingRemover) resolve(node Node, a, b Segment) int {
	if node.T[0] == 0.0 {
		return a.A
	} else if node.T[0] == 1.0 {
		return a.B
	} else if node.T[1] == 0.0 {
		return b.A
	} else if node.T[1] == 1.0 {
		return b.B
	}
	if i := r.index.Find(node.Point); i != -1 {
		return i
	}
	i := len(r.points)
	r.points = append(r.points, node.Point)
	r.index.Add(node.Point, i)
	r.added++
	return i
}

// splits collects for every piece the positions where it must be split, in order of the candidate pairs. It also returns the nodes that caused splits.
func (r *crossingRemover) splits(pairs []Pair, zs []Intersection) (map[int][]split, []Point) {
	splits := map[int][]split{}
	nodes := []Point{}
	for k, z := range zs {
		if !z.Has() {
			continue
		}
		ia, ib := pairs[k].A, pairs[k].B
		a, b := r.pieces[ia].Segment, r.pieces[ib].Segment
		for _, node := range z.Nodes {
			point := r.resolve(node, a, b)
			splitted := false
			for side, i := range [2]int{ia, ib} {
				s := r.pieces[i].Segment
				if node.OnEnd(side) || s.IsDegenerate() || point == s.A || point == s.B {
					continue
				}
				splits[i] = append(splits[i], split{node.T[side], point})
				splitted = true
			}
			if splitted {
				nodes = append(nodes, r.points[point])
			}
		}
	}
	return splits, nodes
}

// rebuild replaces split pieces by their sub-pieces in order along the piece, then removes duplicate pieces keeping the first. Degenerate pieces only survive while splitting continues.
func (r *crossingRemover) rebuild(splits map[int][]split) {
	final := len(splits) == 0
	pieces := make([]piece, 0, len(r.pieces))
	seen := map[Pair]int{}
	add := func(p piece) {
		if p.IsDegenerate() {
			if !final {
				pieces = append(pieces, p)
			}
			return
		}
		key := NewPair(p.A, p.B)
		if j, ok := seen[key]; ok {
			for _, origin := range p.origins {
				if !slices.Contains(pieces[j].origins, origin) {
					pieces[j].origins = append(pieces[j].origins, origin)
				}
			}
			return
		}
		seen[key] = len(pieces)
		pieces = append(pieces, p)
	}

	for i, p := range r.pieces {
		ss, ok := splits[i]
		if !ok {
			add(p)
			continue
		}
		slices.SortStableFunc(ss, func(a, b split) int {
			if a.t < b.t {
				return -1
			} else if b.t < a.t {
				return 1
			}
			return 0
		})
		start := p.A
		for _, s := range append(ss, split{1.0, p.B}) {
			if s.point == start {
				continue
			}
			add(piece{Segment{start, s.point, slices.Clone(p.Tags)}, slices.Clone(p.origins)})
			start = s.point
		}
	}
	r.pieces = pieces
}

func (r *crossingRemover) result(n, passes int) *Result {
	res := &Result{
		Network: &Network{
			Points:   r.points,
			Segments: make([]Segment, len(r.pieces)),
		},
		Provenance: make([][]int, n),
		Merged:     make([]int, len(r.points)),
		Passes:     passes,
		NewPoints:  r.added,
	}
	for i := range res.Merged {
		if i < len(r.merged) {
			res.Merged[i] = r.merged[i]
		} else {
			res.Merged[i] = i
		}
	}
	for i, p := range r.pieces {
		res.Segments[i] = p.Segment
		for _, origin := range p.origins {
			res.Provenance[origin] = append(res.Provenance[origin], i)
		}
	}
	for i := range res.Provenance {
		slices.Sort(res.Provenance[i])
	}
	return res
}

func (r *crossingRemover) convergenceError(passes int, splits map[int][]split, nodes []Point) *ConvergenceError {
	segments := []int{}
	for i := range splits {
		for _, origin := range r.pieces[i].origins {
			if !slices.Contains(segments, origin) {
				segments = append(segments, origin)
			}
		}
	}
	slices.Sort(segments)
	return &ConvergenceError{
		Passes:   passes,
		Segments: segments,
		Points:   nodes,
	}
}

// LogValue lets a result be logged as a group.
func (res *Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("points", len(res.Points)),
		slog.Int("segments", len(res.Segments)),
		slog.Int("new_points", res.NewPoints),
		slog.Int("passes", res.Passes),
	)
}
