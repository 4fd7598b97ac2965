package conversation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/polkiloo/burgerbot/internal/domain/errors"
)

func TestFileAssetsMenuDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cardapio.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := NewFileAssets(path).MenuDocument()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Path != path {
		t.Fatalf("unexpected path: %s", doc.Path)
	}
	if doc.Caption == "" {
		t.Fatal("expected caption set")
	}
}

func TestFileAssetsMissingFile(t *testing.T) {
	_, err := NewFileAssets(filepath.Join(t.TempDir(), "missing.pdf")).MenuDocument()
	if !errors.Is(err, domainErrors.ErrAssetUnavailable) {
		t.Fatalf("expected asset unavailable, got %v", err)
	}
}

func TestFileAssetsEmptyPath(t *testing.T) {
	if _, err := NewFileAssets("").MenuDocument(); !errors.Is(err, domainErrors.ErrAssetUnavailable) {
		t.Fatalf("expected asset unavailable, got %v", err)
	}
}
