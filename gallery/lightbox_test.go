package gallery

import "testing"

func TestLightboxStartsClosed(t *testing.T) {
	var l Lightbox
	if l.IsOpen() {
		t.Fatal("zero Lightbox should be closed")
	}
	if src, ok := l.Selected(); ok || src != "" {
		t.Errorf("Selected() = %q, %v", src, ok)
	}
}

func TestLightboxCloseWhenClosedIsNoop(t *testing.T) {
	var l Lightbox
	l.Close()
	if l.IsOpen() {
		t.Error("Close on closed lightbox opened it")
	}
}

func TestLightboxOpenThenClose(t *testing.T) {
	var l Lightbox
	l.Open("/ALBUM/Gulshan/Gulshan (2).jpeg")
	if !l.IsOpen() {
		t.Fatal("expected open after Open")
	}
	l.Close()
	if src, ok := l.Selected(); ok || src != "" {
		t.Errorf("after Close Selected() = %q, %v", src, ok)
	}
}

func TestLightboxReopenReplaces(t *testing.T) {
	var l Lightbox
	l.Open("/a.jpeg")
	l.Open("/b.jpeg")
	src, ok := l.Selected()
	if !ok || src != "/b.jpeg" {
		t.Errorf("Selected() = %q, %v; want /b.jpeg, true", src, ok)
	}
}
