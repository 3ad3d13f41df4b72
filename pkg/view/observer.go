package view

// Strategy is the update strategy of a collection region.
type Strategy uint8

const (
	// FullReplace rebuilds every node on every update.
	FullReplace Strategy = iota + 1
	// Keyed reuses nodes by key.
	Keyed
)

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case FullReplace:
		return "full"
	case Keyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// RegionInfo identifies a region to observers.
type RegionInfo struct {
	Name     string
	Strategy Strategy
}

// RenderStats describes one update pass of a region.
type RenderStats struct {
	// Items is the length of the normalized sequence.
	Items int
	// Created counts nodes built by the item function.
	Created int
	// Reused counts cache hits.
	Reused int
	// Moved counts reused nodes that had to be reinserted.
	Moved int
	// Removed counts nodes taken out of the region.
	Removed int
	// Evicted counts cache entries dropped after the pass.
	Evicted int
	// Cached is the cache size after the pass.
	Cached int
}

// Observer is notified around region updates. RenderStarted is called
// before a pass; the returned function, if not nil, is called with the
// pass statistics once it completes.
type Observer interface {
	RenderStarted(info RegionInfo) func(RenderStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(info RegionInfo) func(RenderStats)

// RenderStarted implements Observer.
func (f ObserverFunc) RenderStarted(info RegionInfo) func(RenderStats) {
	return f(info)
}
