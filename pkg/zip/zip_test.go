package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchiveRoundTrip(t *testing.T) {
	data, err := Archive([]Entry{
		{Name: "001.jpg", Data: []byte("first")},
		{Name: "002.png", Data: []byte("second")},
	})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zr.File))
	}
	want := map[string]string{"001.jpg": "first", "002.png": "second"}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, _ := io.ReadAll(rc)
		rc.Close()
		if want[f.Name] != string(content) {
			t.Fatalf("entry %s: got %q", f.Name, content)
		}
	}
}

func TestArchiveEmpty(t *testing.T) {
	data, err := Archive(nil)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Fatalf("open empty archive: %v", err)
	}
}
