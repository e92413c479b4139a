package plot

import (
	"fmt"
	"strconv"
)

// layer is one named registry entry: the primitives currently drawn for
// the name, and whether they are attached to the canvas.
type layer struct {
	prims   []Primitive
	visible bool
}

// registry maps layer names to their primitives and walks each layer
// through the absent -> visible -> hidden -> absent lifecycle. It owns
// the primitives it stores.
type registry struct {
	backend Backend
	layers  map[string]*layer
	order   []string // insertion order, for stable listings
	seq     int      // next ordinal for unnamed layers, never reused
}

func newRegistry(b Backend) *registry {
	return &registry{backend: b, layers: make(map[string]*layer)}
}

// nextName assigns an ordinal name to an unnamed layer. The counter is
// strictly monotonic and skips names already taken, so an earlier
// explicitly-named "3" can never be clobbered by a later unnamed layer.
func (r *registry) nextName() string {
	for {
		name := strconv.Itoa(r.seq)
		r.seq++
		if _, ok := r.layers[name]; !ok {
			return name
		}
	}
}

// set installs prims under name, replacing any previous occupant. The
// old occupant is detached first so the canvas never shows both. When
// the call carried no explicit style and the new primitives are kind-
// compatible with the old ones, the old occupant's style is copied onto
// each new primitive before attaching (style continuity). Returns the
// resolved layer name.
func (r *registry) set(name string, prims []Primitive, explicit bool) (string, error) {
	if name == "" {
		name = r.nextName()
	}
	old := r.layers[name]
	if old != nil {
		if old.visible {
			if err := r.detachAll(old); err != nil {
				return name, err
			}
		}
		if !explicit && len(prims) > 0 && len(old.prims) > 0 && compatible(prims[0], old.prims[0]) {
			st := old.prims[0].Style()
			for _, p := range prims {
				p.SetStyle(st)
			}
		}
	}
	for _, p := range prims {
		if err := r.backend.Attach(p); err != nil {
			return name, fmt.Errorf("plot: attach %q: %w", name, err)
		}
	}
	if old != nil {
		old.prims = prims
		old.visible = true
	} else {
		r.layers[name] = &layer{prims: prims, visible: true}
		r.order = append(r.order, name)
	}
	return name, nil
}

// compatible implements the kind-compatibility rule for style
// continuity: same primitive kind, and for stroked kinds either equal
// point counts or both above one. Compound paths are always compatible
// with each other.
func compatible(a, b Primitive) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Kind() == CompoundPath {
		return true
	}
	if a.PointCount() == b.PointCount() {
		return true
	}
	return a.PointCount() > 1 && b.PointCount() > 1
}

// hide detaches a layer's primitives, keeping them for a later show.
// Unknown names are a no-op.
func (r *registry) hide(name string) error {
	l, ok := r.layers[name]
	if !ok || !l.visible {
		return nil
	}
	if err := r.detachAll(l); err != nil {
		return err
	}
	l.visible = false
	return nil
}

// show reattaches a hidden layer. Unknown names are a no-op.
func (r *registry) show(name string) error {
	l, ok := r.layers[name]
	if !ok || l.visible {
		return nil
	}
	for _, p := range l.prims {
		if err := r.backend.Attach(p); err != nil {
			return fmt.Errorf("plot: attach %q: %w", name, err)
		}
	}
	l.visible = true
	return nil
}

// remove hides a layer and releases its entry. Unknown names are a
// no-op.
func (r *registry) remove(name string) error {
	l, ok := r.layers[name]
	if !ok {
		return nil
	}
	if l.visible {
		if err := r.detachAll(l); err != nil {
			return err
		}
	}
	delete(r.layers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// clear releases every layer and restarts ordinal naming, as when the
// whole canvas is reset.
func (r *registry) clear() error {
	for _, name := range r.order {
		l := r.layers[name]
		if l.visible {
			if err := r.detachAll(l); err != nil {
				return err
			}
		}
	}
	r.layers = make(map[string]*layer)
	r.order = nil
	r.seq = 0
	return nil
}

func (r *registry) detachAll(l *layer) error {
	for _, p := range l.prims {
		if err := r.backend.Detach(p); err != nil {
			return fmt.Errorf("plot: detach: %w", err)
		}
	}
	return nil
}

// LayerInfo is a read-only snapshot of one registry entry.
type LayerInfo struct {
	Name    string
	Visible bool
	Count   int // number of primitives
	Color   string
}

// snapshot lists the layers in insertion order.
func (r *registry) snapshot() []LayerInfo {
	infos := make([]LayerInfo, 0, len(r.order))
	for _, name := range r.order {
		l := r.layers[name]
		info := LayerInfo{Name: name, Visible: l.visible, Count: len(l.prims)}
		if len(l.prims) > 0 {
			st := l.prims[0].Style()
			info.Color = st.Color
			if info.Color == "" {
				info.Color = st.Fill
			}
		}
		infos = append(infos, info)
	}
	return infos
}
