package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreWriteAndRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	key, err := store.Write(context.Background(), "album/photo.jpg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if key != "album/photo.jpg" {
		t.Fatalf("unexpected key %q", key)
	}

	data, err := store.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("unexpected data %q", data)
	}
}

func TestFileStoreRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	key, err := store.Write(context.Background(), "pix/qr.png", []byte("png"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Remove(context.Background(), key); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.BasePath(), "pix", "qr.png")); !os.IsNotExist(err) {
		t.Fatalf("expected file gone, stat err=%v", err)
	}

	// missing files are tolerated
	if err := store.Remove(context.Background(), "pix/qr.png"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, key := range []string{"", "..", "../outside.txt", "a/../../etc/passwd"} {
		if _, err := store.Write(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestFileStoreNormalizesKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	key, err := store.Write(context.Background(), "/gifts//cover.png", []byte("x"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if key != "gifts/cover.png" {
		t.Fatalf("unexpected key %q", key)
	}
}
