// Package decor draws the site's inline SVG: section wave separators and the
// line icons used by the navigation bar and contact cards.
package decor

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	svg "github.com/ajstarks/svgo"
)

const stroke = `fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"`

type drawFunc func(s *svg.SVG)

var icons = map[string]drawFunc{
	"home": func(s *svg.SVG) {
		s.Path("M3 9l9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z")
		s.Polyline([]int{9, 9, 15, 15}, []int{22, 12, 12, 22})
	},
	"program": func(s *svg.SVG) {
		s.Path("M4 19.5A2.5 2.5 0 0 1 6.5 17H20")
		s.Path("M6.5 2H20v20H6.5A2.5 2.5 0 0 1 4 19.5v-15A2.5 2.5 0 0 1 6.5 2z")
	},
	"about": func(s *svg.SVG) {
		s.Circle(9, 7, 4)
		s.Path("M3 21v-2a4 4 0 0 1 4-4h4a4 4 0 0 1 4 4v2")
		s.Path("M16 3.13a4 4 0 0 1 0 7.75")
		s.Path("M21 21v-2a4 4 0 0 0-3-3.85")
	},
	"contact": func(s *svg.SVG) {
		s.Path("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 " +
			"19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11" +
			"L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z")
	},
	"mail": func(s *svg.SVG) {
		s.Roundrect(2, 4, 20, 16, 2, 2)
		s.Path("M22 7l-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7")
	},
	"pin": func(s *svg.SVG) {
		s.Path("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0z")
		s.Circle(12, 10, 3)
	},
	"menu": func(s *svg.SVG) {
		s.Line(3, 6, 21, 6)
		s.Line(3, 12, 21, 12)
		s.Line(3, 18, 21, 18)
	},
	"close": func(s *svg.SVG) {
		s.Line(18, 6, 6, 18)
		s.Line(6, 6, 18, 18)
	},
}

// IconNames lists every icon Icon can draw, sorted.
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for n := range icons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var (
	cacheMu sync.Mutex
	cache   = map[string]string{}
)

// Icon returns a 24x24 line icon as inline SVG, or "" for an unknown name.
func Icon(name, class string) string {
	draw, ok := icons[name]
	if !ok {
		return ""
	}
	return cached("icon|"+name+"|"+class, func() string {
		var buf bytes.Buffer
		s := svg.New(&buf)
		start(s, 24, 24, classAttr(class), stroke, `aria-hidden="true"`)
		draw(s)
		s.End()
		return inline(buf.String())
	})
}

// Wave returns the full-width wave that separates page sections. With flip
// set the crest points down, for the top edge of a section.
func Wave(fillClass string, flip bool) string {
	return cached(fmt.Sprintf("wave|%s|%t", fillClass, flip), func() string {
		class := "block w-full h-auto " + fillClass
		if flip {
			class += " rotate-180"
		}
		var buf bytes.Buffer
		s := svg.New(&buf)
		start(s, 1440, 120, classAttr(class), `preserveAspectRatio="none"`, `aria-hidden="true"`)
		s.Path("M0,64 C240,112 480,112 720,72 C960,32 1200,32 1440,64 L1440,120 L0,120 Z", `fill="currentColor"`)
		s.End()
		return inline(buf.String())
	})
}

// Blob returns one of the soft background shapes placed behind hero images.
func Blob(fillClass string, seed int) string {
	return cached(fmt.Sprintf("blob|%s|%d", fillClass, seed), func() string {
		var buf bytes.Buffer
		s := svg.New(&buf)
		start(s, 200, 200, classAttr(fillClass), `aria-hidden="true"`)
		r := 20 + (seed%4)*5
		s.Path(fmt.Sprintf("M100,%d C150,%d 190,60 180,110 C170,160 120,190 80,175 C40,160 10,120 25,75 C40,30 70,%d 100,%d Z",
			r, r, r, r), `fill="currentColor"`)
		s.End()
		return inline(buf.String())
	})
}

func cached(key string, render func() string) string {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if v, ok := cache[key]; ok {
		return v
	}
	v := render()
	cache[key] = v
	return v
}

// start opens the root element with a viewBox matching its size plus attrs.
func start(s *svg.SVG, w, h int, attrs ...string) {
	ns := []string{fmt.Sprintf(` viewBox="0 0 %d %d"`, w, h)}
	for _, a := range attrs {
		ns = append(ns, " "+a)
	}
	s.Start(w, h, ns...)
}

func classAttr(class string) string {
	return fmt.Sprintf(`class="%s"`, strings.ReplaceAll(class, `"`, ""))
}

// inline drops the XML prolog svgo writes ahead of the root element.
func inline(doc string) string {
	if i := strings.Index(doc, "<svg"); i > 0 {
		doc = doc[i:]
	}
	return strings.TrimSpace(doc)
}
