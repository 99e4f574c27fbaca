package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeSchemaDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestAnalyzeDir(t *testing.T) {
	dir := writeSchemaDir(t, map[string]string{
		"good.sdml":    validSchema,
		"broken.sdml":  brokenSchema,
		"ignored.toml": "not a schema",
	})

	fs, results, err := AnalyzeDir(context.Background(), dir, 100, 2, nil)
	if err != nil {
		t.Fatalf("AnalyzeDir failed: %v", err)
	}
	if fs == nil {
		t.Fatalf("expected a FileSet")
	}
	if len(results) != 2 {
		t.Fatalf("expected results for 2 *.sdml files, got %d", len(results))
	}

	// результаты отсортированы по пути: broken перед good
	if filepath.Base(results[0].Path) != "broken.sdml" || filepath.Base(results[1].Path) != "good.sdml" {
		t.Fatalf("unexpected result order: %v, %v", results[0].Path, results[1].Path)
	}
	if !results[0].Bag.HasErrors() || results[0].Model != nil {
		t.Fatalf("broken schema must produce errors and no model")
	}
	if results[1].Bag.HasErrors() || results[1].Model == nil {
		t.Fatalf("good schema must produce a model, got %v", results[1].Bag.Items())
	}
}

func TestAnalyzeDirEmpty(t *testing.T) {
	fs, results, err := AnalyzeDir(context.Background(), t.TempDir(), 100, 0, nil)
	if err != nil {
		t.Fatalf("AnalyzeDir failed: %v", err)
	}
	if fs == nil || len(results) != 0 {
		t.Fatalf("expected empty result set, got %d", len(results))
	}
}

func TestAnalyzeDirUsesCache(t *testing.T) {
	dir := writeSchemaDir(t, map[string]string{
		"good.sdml":   validSchema,
		"broken.sdml": brokenSchema,
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	_, first, err := AnalyzeDir(context.Background(), dir, 100, 2, cache)
	if err != nil {
		t.Fatalf("first AnalyzeDir failed: %v", err)
	}
	for _, r := range first {
		if r.FromCache {
			t.Fatalf("first run must analyze from scratch: %v", r.Path)
		}
	}

	_, second, err := AnalyzeDir(context.Background(), dir, 100, 2, cache)
	if err != nil {
		t.Fatalf("second AnalyzeDir failed: %v", err)
	}
	for i, r := range second {
		if !r.FromCache {
			t.Fatalf("second run must come from cache: %v", r.Path)
		}
		if r.Bag.Len() != first[i].Bag.Len() {
			t.Fatalf("cached diagnostics differ for %v: %d vs %d",
				r.Path, r.Bag.Len(), first[i].Bag.Len())
		}
		for j, d := range r.Bag.Items() {
			orig := first[i].Bag.Items()[j]
			if d.Code != orig.Code || d.Message != orig.Message ||
				d.Primary.Start != orig.Primary.Start {
				t.Fatalf("cached diagnostic %d differs: %v vs %v", j, d, orig)
			}
		}
	}

	// изменение файла инвалидирует кеш по content-хешу
	rewritten := "model User {\n\tid: ShortStr @id\n\twraith: Spectre\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "good.sdml"), []byte(rewritten), 0o644); err != nil {
		t.Fatalf("failed to rewrite schema: %v", err)
	}
	_, third, err := AnalyzeDir(context.Background(), dir, 100, 2, cache)
	if err != nil {
		t.Fatalf("third AnalyzeDir failed: %v", err)
	}
	for _, r := range third {
		if filepath.Base(r.Path) == "good.sdml" {
			if r.FromCache {
				t.Fatalf("rewritten file must be re-analyzed")
			}
			if !r.Bag.HasErrors() {
				t.Fatalf("rewritten file must now produce errors")
			}
		}
	}
}

func TestAnalyzeDirCanceled(t *testing.T) {
	dir := writeSchemaDir(t, map[string]string{"good.sdml": validSchema})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := AnalyzeDir(ctx, dir, 100, 1, nil)
	if err == nil {
		t.Fatalf("expected a cancellation error")
	}
}
