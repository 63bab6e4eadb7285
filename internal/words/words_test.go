package words

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNewBank_CategoryOrder(t *testing.T) {
	b := NewBank()

	got := b.Categories()
	want := []string{"general", "animals", "fruits"}
	if !slices.Equal(got, want) {
		t.Errorf("Expected categories %v, got %v", want, got)
	}
	if got[0] != DefaultCategory {
		t.Errorf("Expected default category first, got %q", got[0])
	}
}

func TestWords_UnknownCategoryFallsBack(t *testing.T) {
	b := NewBank()

	got := b.Words("no-such-category")
	want := b.Words(DefaultCategory)
	if !slices.Equal(got, want) {
		t.Errorf("Expected fallback to default words %v, got %v", want, got)
	}
}

func TestRandomWord_PinnedPick(t *testing.T) {
	b := NewBank()
	b.pick = func(n int) int { return 1 }

	word, err := b.RandomWord("animals")
	if err != nil {
		t.Fatalf("RandomWord failed: %v", err)
	}
	if word != "giraffe" {
		t.Errorf("Expected 'giraffe', got %q", word)
	}
}

func TestRandomWord_UnknownCategoryUsesDefault(t *testing.T) {
	b := NewBank()
	b.pick = func(n int) int { return 0 }

	word, err := b.RandomWord("no-such-category")
	if err != nil {
		t.Fatalf("RandomWord failed: %v", err)
	}
	if word != "gopher" {
		t.Errorf("Expected first default word, got %q", word)
	}
}

func TestRandomWord_EmptyCategoryErrors(t *testing.T) {
	b := NewBank()
	b.AddCategory("empty", nil)

	_, err := b.RandomWord("empty")
	if err == nil {
		t.Fatal("Expected error for empty category")
	}
	if got := err.Error(); got != `no words available for category "empty"` {
		t.Errorf("Error should name the category, got %q", got)
	}
}

func TestAddCategory_AppendsToExisting(t *testing.T) {
	b := NewBank()
	before := len(b.Categories())

	b.AddCategory("animals", []string{"wombat"})

	if len(b.Categories()) != before {
		t.Error("Appending to an existing category should not change the order")
	}
	if !slices.Contains(b.Words("animals"), "wombat") {
		t.Error("Expected appended word in category")
	}
}

func TestLoadPaths_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.txt")
	content := "# colors list\ncrimson\n\n  turquoise  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	b := NewBank()
	if err := b.LoadPaths([]string{path}); err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}

	got := b.Words("colors")
	want := []string{"crimson", "turquoise"}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if !slices.Contains(b.Categories(), "colors") {
		t.Error("Expected 'colors' category to be registered")
	}
}

func TestLoadPaths_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "metals.txt"), []byte("copper\ntitanium\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("# nothing here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	b := NewBank()
	if err := b.LoadPaths([]string{dir}); err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}

	if !slices.Contains(b.Categories(), "metals") {
		t.Error("Expected 'metals' category from directory load")
	}
	if slices.Contains(b.Categories(), "empty") {
		t.Error("Files with no words should not create categories")
	}
}

func TestLoadPaths_MissingPath(t *testing.T) {
	b := NewBank()
	if err := b.LoadPaths([]string{"/no/such/path"}); err == nil {
		t.Error("Expected error for missing path")
	}
}
