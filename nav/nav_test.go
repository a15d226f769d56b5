package nav

import (
	"net/url"
	"testing"
)

func TestMenuToggleTwiceReturnsClosed(t *testing.T) {
	var m Menu
	m.Toggle()
	if !m.Open() {
		t.Fatal("expected open after first toggle")
	}
	m.Toggle()
	if m.Open() {
		t.Error("expected closed after second toggle")
	}
}

func TestMenuNavigateForcesClosed(t *testing.T) {
	m := MenuFromQuery("open")
	if !m.Open() {
		t.Fatal("menu=open should restore an open menu")
	}
	href := m.Navigate(Destinations[3])
	if href != "/contact/" {
		t.Errorf("Navigate href = %q, want /contact/", href)
	}
	if m.Open() {
		t.Error("menu still open after Navigate")
	}
}

func TestMenuFromQuery(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"open", true},
		{"", false},
		{"closed", false},
		{"OPEN", false},
	}
	for _, tt := range tests {
		m := MenuFromQuery(tt.in)
		if m.Open() != tt.want {
			t.Errorf("MenuFromQuery(%q).Open() = %v, want %v", tt.in, m.Open(), tt.want)
		}
	}
}

func TestToggleHref(t *testing.T) {
	var closed Menu
	open := MenuFromQuery("open")
	tests := []struct {
		menu  Menu
		path  string
		query url.Values
		want  string
	}{
		{closed, "/about-us/", nil, "/about-us/?menu=open"},
		{open, "/about-us/", url.Values{"menu": {"open"}}, "/about-us/"},
		{closed, "/", url.Values{"filter": {"learn"}}, "/?filter=learn&menu=open"},
		{open, "/", url.Values{"filter": {"learn"}, "menu": {"open"}}, "/?filter=learn"},
		{open, "/contact/", url.Values{"branch": {"gulshan"}, "photo": {"3"}, "menu": {"open"}}, "/contact/?branch=gulshan&photo=3"},
	}
	for _, tt := range tests {
		if got := tt.menu.ToggleHref(tt.path, tt.query); got != tt.want {
			t.Errorf("ToggleHref(%q, %v) open=%v = %q, want %q", tt.path, tt.query, tt.menu.Open(), got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		name string
		ok   bool
	}{
		{"/", "home", true},
		{"/our-program/", "program", true},
		{"/our-program", "program", true},
		{"/about-us/", "about", true},
		{"/contact", "contact", true},
		{"/blog/", "", false},
	}
	for _, tt := range tests {
		d, ok := Lookup(tt.path)
		if ok != tt.ok || d.Name != tt.name {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.path, d.Name, ok, tt.name, tt.ok)
		}
	}
	if !Destinations[0].Active("/") || Destinations[0].Active("/contact/") {
		t.Error("Active mismatch for home")
	}
}
