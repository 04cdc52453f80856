// Package views is the default folio theme. Pages are templ components
// written directly against the templ runtime; Funcs wires them into a
// folio.ViewFuncs.
package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so page code can stay linear.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped. Empty values are skipped.
func (w *writer) attr(name, value string) {
	if value == "" {
		return
	}
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (w *writer) num(n int) {
	w.raw(strconv.Itoa(n))
}

func (w *writer) child(c templ.Component) {
	if w.err == nil && c != nil {
		w.err = c.Render(w.ctx, w.w)
	}
}

// component adapts a rendering function to templ.Component.
func component(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{ctx: ctx, w: out}
		fn(w)
		return w.err
	})
}
