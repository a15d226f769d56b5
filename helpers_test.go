package playlearn

import "testing"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://littlewonders.example", nil, "https://littlewonders.example"},
		{"https://littlewonders.example", []string{"our-program"}, "https://littlewonders.example/our-program/"},
		{"https://littlewonders.example/", []string{"/about-us/"}, "https://littlewonders.example/about-us/"},
		{"https://littlewonders.example/site", []string{"contact"}, "https://littlewonders.example/site/contact/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
