package gallery

import (
	"errors"
	"testing"
)

func homeAlbum(t *testing.T) *Album {
	t.Helper()
	a, err := NewAlbum("ALBUM", "image", "webp", 28, DefaultBands())
	if err != nil {
		t.Fatalf("NewAlbum failed: %v", err)
	}
	return a
}

func TestSourcePath(t *testing.T) {
	tests := []struct {
		dir, stem, ext string
		n              int
		want           string
	}{
		{"ALBUM", "image", "webp", 11, "/ALBUM/image (11).webp"},
		{"ALBUM/Uttara", "Uttara", "jpeg", 3, "/ALBUM/Uttara/Uttara (3).jpeg"},
		{"Adjustment", "adjustment", "webp", 1, "/Adjustment/adjustment (1).webp"},
		{"after school", "afterschool", "webp", 4, "/after school/afterschool (4).webp"},
	}
	for _, tt := range tests {
		got := SourcePath(tt.dir, tt.stem, tt.n, tt.ext)
		if got != tt.want {
			t.Errorf("SourcePath(%q, %q, %d, %q) = %q, want %q", tt.dir, tt.stem, tt.n, tt.ext, got, tt.want)
		}
	}
}

func TestFilterVisibleMatchesBands(t *testing.T) {
	a := homeAlbum(t)
	tests := []struct {
		tag        Tag
		from, to   int
		wantLength int
	}{
		{TagAll, 0, 28, 28},
		{TagPlay, 0, 10, 10},
		{TagLearn, 10, 20, 10},
		{TagEvents, 20, 28, 8},
	}
	for _, tt := range tests {
		f := NewFilter(a)
		f.Set(tt.tag)
		got := f.Visible()
		if len(got) != tt.wantLength {
			t.Fatalf("Visible(%s) len = %d, want %d", tt.tag, len(got), tt.wantLength)
		}
		for i, img := range got {
			if img.Index != tt.from+i {
				t.Errorf("Visible(%s)[%d].Index = %d, want %d", tt.tag, i, img.Index, tt.from+i)
			}
			if tt.tag != TagAll && img.Tag != tt.tag {
				t.Errorf("Visible(%s)[%d].Tag = %s", tt.tag, i, img.Tag)
			}
		}
	}
}

func TestFilterLearnEndToEnd(t *testing.T) {
	f := NewFilter(homeAlbum(t))
	f.Set(TagLearn)
	got := f.Visible()
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0].Index != 10 || got[9].Index != 19 {
		t.Errorf("indices = %d..%d, want 10..19", got[0].Index, got[9].Index)
	}
	if got[0].Src != "/ALBUM/image (11).webp" {
		t.Errorf("first src = %q", got[0].Src)
	}
}

func TestFilterSetIdempotent(t *testing.T) {
	a := homeAlbum(t)
	once := NewFilter(a)
	once.Set(TagEvents)
	twice := NewFilter(a)
	twice.Set(TagEvents)
	twice.Set(TagEvents)

	x, y := once.Visible(), twice.Visible()
	if len(x) != len(y) {
		t.Fatalf("len %d != %d", len(x), len(y))
	}
	for i := range x {
		if x[i] != y[i] {
			t.Errorf("image %d differs: %+v vs %+v", i, x[i], y[i])
		}
	}
}

func TestFilterDefaultsToAll(t *testing.T) {
	f := NewFilter(homeAlbum(t))
	if f.Active() != TagAll {
		t.Errorf("Active() = %s, want all", f.Active())
	}
	if len(f.Visible()) != 28 {
		t.Errorf("default visible = %d, want 28", len(f.Visible()))
	}
}

func TestVisibleDoesNotAliasAlbum(t *testing.T) {
	a := homeAlbum(t)
	f := NewFilter(a)
	got := f.Visible()
	got[0].Src = "mutated"
	if img, _ := a.ByNumber(1); img.Src == "mutated" {
		t.Error("Visible leaked the album's backing slice")
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"all", TagAll, true},
		{"play", TagPlay, true},
		{"learn", TagLearn, true},
		{"events", TagEvents, true},
		{"", TagAll, false},
		{"Play", TagAll, false},
		{"sports", TagAll, false},
	}
	for _, tt := range tests {
		got, ok := ParseTag(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTag(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewAlbumRejectsBadBands(t *testing.T) {
	tests := []struct {
		name  string
		count int
		bands []Band
	}{
		{"gap", 28, []Band{{TagPlay, 0, 10}, {TagLearn, 11, 28}}},
		{"overlap", 28, []Band{{TagPlay, 0, 10}, {TagLearn, 9, 28}}},
		{"short", 28, []Band{{TagPlay, 0, 10}, {TagLearn, 10, 20}}},
		{"unknown tag", 10, []Band{{Tag("naps"), 0, 10}}},
		{"all as band", 10, []Band{{TagAll, 0, 10}}},
		{"empty band", 10, []Band{{TagPlay, 0, 0}, {TagLearn, 0, 10}}},
		{"zero count", 0, nil},
	}
	for _, tt := range tests {
		if _, err := NewAlbum("ALBUM", "image", "webp", tt.count, tt.bands); !errors.Is(err, ErrBands) {
			t.Errorf("%s: err = %v, want ErrBands", tt.name, err)
		}
	}
}

func TestAlbumWithoutBands(t *testing.T) {
	a, err := NewAlbum("ALBUM/Gulshan", "Gulshan", "jpeg", 6, nil)
	if err != nil {
		t.Fatalf("NewAlbum failed: %v", err)
	}
	img, ok := a.ByNumber(6)
	if !ok || img.Src != "/ALBUM/Gulshan/Gulshan (6).jpeg" {
		t.Errorf("ByNumber(6) = %+v, %v", img, ok)
	}
	if _, ok := a.ByNumber(7); ok {
		t.Error("ByNumber(7) should not resolve")
	}
	if _, ok := a.ByNumber(0); ok {
		t.Error("ByNumber(0) should not resolve")
	}
}

func TestRotationStableAndBounded(t *testing.T) {
	for n := 1; n <= 100; n++ {
		r := Rotation(n)
		if r < -3 || r > 3 {
			t.Fatalf("Rotation(%d) = %v out of range", n, r)
		}
		if r != Rotation(n) {
			t.Fatalf("Rotation(%d) not deterministic", n)
		}
	}
}

func TestTapeColor(t *testing.T) {
	if got := TapeColor(4); got != "bg-rose-400" {
		t.Errorf("TapeColor(4) = %q", got)
	}
	if got := TapeColor(5); got != "bg-sky-400" {
		t.Errorf("TapeColor(5) = %q", got)
	}
}
