package gallery

// Filter holds the selected category of an album and derives the visible
// subset from it. The zero value is not usable; call NewFilter.
type Filter struct {
	album  *Album
	active Tag
}

// NewFilter returns a filter over album showing everything.
func NewFilter(album *Album) *Filter {
	return &Filter{album: album, active: TagAll}
}

// Set replaces the current selection.
func (f *Filter) Set(t Tag) {
	f.active = t
}

// Active returns the current selection.
func (f *Filter) Active() Tag {
	return f.active
}

// Visible returns the images matching the selection in ascending index order.
func (f *Filter) Visible() []Image {
	if f.active == TagAll {
		return f.album.Images()
	}
	var out []Image
	for _, img := range f.album.images {
		if img.Tag == f.active {
			out = append(out, img)
		}
	}
	return out
}
