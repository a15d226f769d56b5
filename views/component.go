package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"

	"github.com/littlewonders/playlearn/decor"
)

// Component adapts a gomponents node to templ so handlers can keep using the
// templ render helpers.
func Component(n cmp.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func icon(name, class string) cmp.Node {
	return cmp.Raw(decor.Icon(name, class))
}

func wave(fillClass string, flip bool) cmp.Node {
	return cmp.Raw(decor.Wave(fillClass, flip))
}
