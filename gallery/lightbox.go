package gallery

// Lightbox is the enlarged single-image overlay. The zero value is closed.
//
// Opening while already open replaces the selection; there is no
// intermediate closed state.
type Lightbox struct {
	src  string
	open bool
}

// Open selects src.
func (l *Lightbox) Open(src string) {
	l.src = src
	l.open = true
}

// Close clears the selection. Closing a closed lightbox does nothing.
func (l *Lightbox) Close() {
	l.src = ""
	l.open = false
}

// IsOpen reports whether an image is selected.
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Selected returns the selected source path.
func (l *Lightbox) Selected() (string, bool) {
	return l.src, l.open
}
