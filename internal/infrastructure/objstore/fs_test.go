package objstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir, "https://cdn.example.com")

	url, err := store.Upload("shops/u1/1700000000_logo.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://cdn.example.com/assets/shops/u1/1700000000_logo.png" {
		t.Fatalf("url = %q", url)
	}

	onDisk := filepath.Join(dir, "shops", "u1", "1700000000_logo.png")
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored data = %q", data)
	}

	if err := store.Delete(url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatal("object still present after delete")
	}
	// Deleting twice is fine.
	if err := store.Delete(url); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestUploadRejectsTraversal(t *testing.T) {
	store := NewFSStore(t.TempDir(), "")
	if _, err := store.Upload("../escape.txt", []byte("x")); err == nil {
		t.Fatal("path traversal accepted")
	}
	if _, err := store.Upload("", []byte("x")); err == nil {
		t.Fatal("empty path accepted")
	}
}

func TestDeleteIgnoresForeignURL(t *testing.T) {
	store := NewFSStore(t.TempDir(), "")
	if err := store.Delete("https://elsewhere.example.com/image.png"); err != nil {
		t.Fatalf("foreign url: %v", err)
	}
}
