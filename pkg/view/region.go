package view

import (
	"fmt"
	"math"
	"reflect"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/model"
)

// ItemFunc builds the content of one collection item from its cell.
type ItemFunc func(item *model.State) any

// KeyFunc derives the identity of a collection item.
type KeyFunc func(item any) any

// Option configures a collection region.
type Option func(*regionConfig)

type regionConfig struct {
	name      string
	key       KeyFunc
	retain    bool
	observers []Observer
}

// WithKey switches the region to keyed reconciliation.
func WithKey(fn KeyFunc) Option {
	return func(c *regionConfig) { c.key = fn }
}

// WithRetainUnseen keeps cache entries whose keys are missing from the
// latest sequence.
func WithRetainUnseen() Option {
	return func(c *regionConfig) { c.retain = true }
}

// WithObserver registers an observer of update passes.
func WithObserver(o Observer) Option {
	return func(c *regionConfig) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithName names the region for observers.
func WithName(name string) Option {
	return func(c *regionConfig) { c.name = name }
}

type entry struct {
	state *model.State
	node  host.Node
}

// uncomparable stands in for keys that cannot be map keys.
type uncomparable string

// Region renders a collection between two markers.
type Region struct {
	*DynamicFragment
	itemFn ItemFunc
	cfg    regionConfig
	cache  map[any]*entry
}

// Each renders the collection held by items. See the package
// documentation for the two update strategies. A nil itemFn renders every
// item as bound text.
func Each(doc host.Document, items model.Observable, itemFn ItemFunc, opts ...Option) *Region {
	if items == nil {
		panic(errors.New("R002").WithDetail("Each requires an observable collection"))
	}
	r := &Region{
		DynamicFragment: NewDynamicFragment(doc),
		itemFn:          itemFn,
	}
	for _, opt := range opts {
		opt(&r.cfg)
	}
	if r.itemFn == nil {
		r.itemFn = func(s *model.State) any { return s }
	}
	if r.cfg.key != nil {
		r.cache = make(map[any]*entry)
		items.Observe(r.reconcile)
	} else {
		items.Observe(r.replace)
	}
	return r
}

// Strategy returns the update strategy.
func (r *Region) Strategy() Strategy {
	if r.cfg.key != nil {
		return Keyed
	}
	return FullReplace
}

// CacheSize returns the number of cached keyed entries.
func (r *Region) CacheSize() int {
	return len(r.cache)
}

func (r *Region) started() func(RenderStats) {
	if len(r.cfg.observers) == 0 {
		return nil
	}
	info := RegionInfo{Name: r.cfg.name, Strategy: r.Strategy()}
	var done []func(RenderStats)
	for _, o := range r.cfg.observers {
		if fn := o.RenderStarted(info); fn != nil {
			done = append(done, fn)
		}
	}
	return func(s RenderStats) {
		for _, fn := range done {
			fn(s)
		}
	}
}

func (r *Region) replace(value any) {
	var stats RenderStats
	if finish := r.started(); finish != nil {
		defer func() { finish(stats) }()
	}
	stats.Removed = r.clear()
	items := Items(value)
	stats.Items = len(items)
	frag := r.doc.CreateFragment()
	for _, it := range items {
		frag.AppendChild(NodeOf(r.doc, r.itemFn(model.NewState(it))))
		stats.Created++
	}
	r.end.Parent().InsertBefore(frag, r.end)
}

func (r *Region) reconcile(value any) {
	var stats RenderStats
	if finish := r.started(); finish != nil {
		defer func() { finish(stats) }()
	}
	items := Items(value)
	stats.Items = len(items)

	// A duplicated key is placed at its last occurrence.
	keys := make([]any, len(items))
	last := make(map[any]int, len(items))
	fresh := make(map[any]bool)
	for i, it := range items {
		key := cacheKey(r.cfg.key(it))
		keys[i] = key
		last[key] = i
		if e, ok := r.cache[key]; ok {
			e.state.Set(it)
			stats.Reused++
			continue
		}
		s := model.NewState(it)
		n := NodeOf(r.doc, r.itemFn(s))
		if n.Type() == host.FragmentNode {
			panic(errors.New("R002").WithDetail("keyed items must render to a single node, got a fragment"))
		}
		r.cache[key] = &entry{state: s, node: n}
		fresh[key] = true
		stats.Created++
	}

	parent := r.end.Parent()
	cursor := r.start.NextSibling()
	for i, key := range keys {
		if last[key] != i {
			continue
		}
		node := r.cache[key].node
		if host.Same(cursor, node) {
			cursor = cursor.NextSibling()
			continue
		}
		parent.InsertBefore(node, cursor)
		if !fresh[key] {
			stats.Moved++
		}
	}
	for cursor != nil && !host.Same(cursor, r.end) {
		next := cursor.NextSibling()
		parent.RemoveChild(cursor)
		stats.Removed++
		cursor = next
	}

	if !r.cfg.retain {
		for key := range r.cache {
			if _, ok := last[key]; !ok {
				delete(r.cache, key)
				stats.Evicted++
			}
		}
	}
	stats.Cached = len(r.cache)
}

// nanKey stands in for NaN keys, which never equal themselves.
type nanKey struct{}

func cacheKey(k any) any {
	switch f := k.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(f) {
			return nanKey{}
		}
	case float32:
		if math.IsNaN(float64(f)) {
			return nanKey{}
		}
	}
	if reflect.ValueOf(k).Comparable() {
		return k
	}
	return uncomparable(fmt.Sprintf("%T:%v", k, k))
}

// Items normalizes a collection value: nil is empty, slices and arrays
// yield their elements and any other value is a single item.
func Items(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}

// Render shows itemFn(value) for the current value of m, or nullFn() while
// it is nil, replacing the content on every change. Nil functions render
// the value as text and nothing for nil.
func Render(doc host.Document, m model.Observable, itemFn func(value any) any, nullFn func() any) *DynamicFragment {
	d := NewDynamicFragment(doc)
	m.Observe(func(v any) {
		switch {
		case v == nil && nullFn != nil:
			d.Set(nullFn())
		case v == nil:
			d.Clear()
		case itemFn != nil:
			d.Set(itemFn(v))
		default:
			d.Set(v)
		}
	})
	return d
}
