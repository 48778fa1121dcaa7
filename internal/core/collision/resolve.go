package collision

// Request is everything Resolve needs for one drag event.
type Request struct {
	// Dragging is the kind of item being dragged.
	Dragging Kind
	Args
	// LastResolvedID is the target found by the previous event of the same
	// drag session, or empty.
	LastResolvedID string
}

// Result is the outcome of Resolve. Fresh is false when ID was carried over
// from Request.LastResolvedID because nothing intersected.
type Result struct {
	ID    string
	Fresh bool
}

// Found reports whether any target was resolved.
func (r Result) Found() bool { return r.ID != "" }

// Resolve picks at most one target for the dragged item.
//
// Columns are matched by closest corners against column containers only.
// Cards try pointer-within hits, then rect-intersection hits. When the best
// hit is a column container the target is refined to the nearest card of that
// column by center distance, or stays the column when it holds no cards.
// When nothing is hit the previous target is reused.
func Resolve(req Request) Result {
	if req.Dragging == KindColumn {
		args := req.Args
		args.Droppables = filter(req.Droppables, func(d Droppable) bool { return d.Kind == KindColumn })
		if id, ok := FirstCollision(ClosestCorners(args)); ok {
			return Result{ID: id, Fresh: true}
		}
		return Result{}
	}

	hits := PointerWithin(req.Args)
	if len(hits) == 0 {
		hits = RectIntersection(req.Args)
	}

	id, ok := FirstCollision(hits)
	if !ok {
		return Result{ID: req.LastResolvedID}
	}

	if isColumn(req.Droppables, id) {
		args := req.Args
		columnID := id
		args.Droppables = filter(req.Droppables, func(d Droppable) bool {
			return d.Kind == KindCard && d.ID != columnID && d.ColumnID == columnID
		})
		if cardID, ok := FirstCollision(ClosestCenter(args)); ok {
			id = cardID
		}
	}
	return Result{ID: id, Fresh: true}
}

// Lookup returns the droppable with the given ID.
func Lookup(droppables []Droppable, id string) (Droppable, bool) {
	for _, d := range droppables {
		if d.ID == id {
			return d, true
		}
	}
	return Droppable{}, false
}

func isColumn(droppables []Droppable, id string) bool {
	d, ok := Lookup(droppables, id)
	return ok && d.Kind == KindColumn
}

func filter(droppables []Droppable, keep func(Droppable) bool) []Droppable {
	var out []Droppable
	for _, d := range droppables {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
