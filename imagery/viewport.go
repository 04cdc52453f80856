package imagery

import (
	"path"
	"sync"
)

// Viewport is the live size of the rendering surface.
type Viewport struct {
	Width  int
	Height int
}

// IsPortrait reports whether the viewport is taller than it is wide.
func (v Viewport) IsPortrait() bool {
	return v.Height > v.Width
}

// ViewportSource delivers viewport changes to subscribers. Subscribe returns
// a function that removes the subscription. Rate limiting of noisy resize
// events is the source's concern, not the resolver's.
type ViewportSource interface {
	Subscribe(fn func(Viewport)) (cancel func())
}

// ViewportFeed is an in-process ViewportSource that broadcasts every
// published viewport to its subscribers.
type ViewportFeed struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Viewport)
}

// NewViewportFeed returns an empty feed.
func NewViewportFeed() *ViewportFeed {
	return &ViewportFeed{subs: make(map[int]func(Viewport))}
}

// Subscribe registers fn for future Publish calls.
func (f *ViewportFeed) Subscribe(fn func(Viewport)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = fn
	f.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

// Publish delivers v to every current subscriber.
func (f *ViewportFeed) Publish(v Viewport) {
	f.mu.Lock()
	fns := make([]func(Viewport), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

// Binding keeps one displayed image resolved against a changing viewport.
// It re-resolves whenever the orientation flips and walks the fallback
// chain when the consumer reports a load failure.
type Binding struct {
	r        *Resolver
	name     string
	onChange func(Resolution)
	cancel   func()

	mu       sync.Mutex
	portrait bool
	current  Resolution
	failures int
	closed   bool
}

// Bind resolves name for the initial viewport and re-resolves it on every
// orientation change reported by src. onChange, if non-nil, receives each
// new resolution, including fallbacks.
func (r *Resolver) Bind(src ViewportSource, name string, initial Viewport, onChange func(Resolution)) *Binding {
	b := &Binding{
		r:        r,
		name:     name,
		onChange: onChange,
		portrait: initial.IsPortrait(),
	}
	b.current = r.Resolve(name, b.portrait)
	if src != nil {
		b.cancel = src.Subscribe(b.viewportChanged)
	}
	return b
}

func (b *Binding) viewportChanged(v Viewport) {
	b.mu.Lock()
	if b.closed || v.IsPortrait() == b.portrait {
		b.mu.Unlock()
		return
	}
	b.portrait = v.IsPortrait()
	b.failures = 0
	b.current = b.r.Resolve(b.name, b.portrait)
	res := b.current
	b.mu.Unlock()
	b.notify(res)
}

// Current returns the resolution currently displayed.
func (b *Binding) Current() Resolution {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Fail records that the current URL failed to load and advances to the next
// fallback. It returns false once the chain is exhausted, after which the
// binding keeps showing the placeholder.
func (b *Binding) Fail() (Resolution, bool) {
	b.mu.Lock()
	if b.closed || b.failures >= MaxFallbackSteps {
		res := b.current
		b.mu.Unlock()
		return res, false
	}
	next, ok := b.r.Fallback(b.current.URL)
	if !ok {
		b.failures = MaxFallbackSteps
		res := b.current
		b.mu.Unlock()
		return res, false
	}
	b.failures++
	p := DecodePath(next)
	src := SourceHeuristic
	if p == b.r.placeholder {
		src = SourcePlaceholder
	} else if _, _, known := b.r.manifest.variantAt(p); known {
		src = SourceManifest
	}
	b.current = b.r.finish(p, b.orientationOf(p), src)
	res := b.current
	b.mu.Unlock()
	b.notify(res)
	return res, true
}

// Close stops listening for viewport changes.
func (b *Binding) Close() {
	b.mu.Lock()
	b.closed = true
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (b *Binding) notify(res Resolution) {
	if b.onChange != nil {
		b.onChange(res)
	}
}

func (b *Binding) orientationOf(p string) Orientation {
	if _, v, known := b.r.manifest.variantAt(p); known {
		return v.Orientation
	}
	return DetectOrientation(path.Base(p))
}
