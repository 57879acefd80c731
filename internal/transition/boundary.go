// Package transition enables animated page transitions between navigations.
//
// Documents rendered inside a Boundary opt in to cross-document View Transitions,
// so same-origin link navigations animate without client-side routing.
package transition

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type boundaryKey struct{}

const headMarkup = `<meta name="view-transition" content="same-origin">` +
	`<style>@view-transition{navigation:auto}</style>`

// Boundary renders children with page transitions enabled.
func Boundary(children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if children == nil {
			return nil
		}
		return children.Render(context.WithValue(ctx, boundaryKey{}, true), w)
	})
}

// Enabled reports whether rendering happens inside a Boundary.
func Enabled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(boundaryKey{}).(bool)
	return v
}

// Head emits the view-transition opt-in tags when inside a Boundary and nothing otherwise.
func Head() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !Enabled(ctx) {
			return nil
		}
		_, err := io.WriteString(w, headMarkup)
		return err
	})
}
