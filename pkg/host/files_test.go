package host_test

import (
	"path/filepath"
	"testing"

	"github.com/vela-lang/vela/pkg/host"
)

func TestOSFileStoreRoundTrip(t *testing.T) {
	store := host.OSFileStore{}
	path := filepath.Join(t.TempDir(), "note.txt")

	if err := store.WriteText(path, "content"); err != nil {
		t.Fatalf("WriteText failed: %s", err)
	}

	got, err := store.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText failed: %s", err)
	}
	if got != "content" {
		t.Errorf("ReadText = %q", got)
	}
}

func TestOSFileStoreMissingPath(t *testing.T) {
	store := host.OSFileStore{}
	if _, err := store.ReadText(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing path")
	}
}
