package runner

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		if err := os.WriteFile(p, []byte{0}, 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestListImagesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := listImages(dir); !errors.Is(err, ErrNoCandidateImages) {
		t.Errorf("expected ErrNoCandidateImages, got %v", err)
	}
}

func TestListImagesSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := listImages(dir); !errors.Is(err, ErrNoCandidateImages) {
		t.Errorf("expected ErrNoCandidateImages with only a subdirectory, got %v", err)
	}

	writeFiles(t, dir, "a.png")
	paths, err := listImages(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 {
		t.Errorf("expected 1 candidate, got %d", len(paths))
	}
}

func TestPickImageNeverRepeats(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.png", "b.png", "c.png")
	paths, err := listImages(dir)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(3, 3))
	previous := ""
	for i := 0; i < 500; i++ {
		p := pickImage(rng, paths, previous)
		if p == previous {
			t.Fatalf("selector repeated %q at draw %d", p, i)
		}
		previous = p
	}
}

func TestPickImageTwoFilesAlwaysOther(t *testing.T) {
	candidates := []string{"A", "B"}
	rng := rand.New(rand.NewPCG(11, 11))
	for i := 0; i < 100; i++ {
		if p := pickImage(rng, candidates, "A"); p != "B" {
			t.Fatalf("expected B, got %q", p)
		}
	}
}

func TestPickImageSingleFileAllowsRepeat(t *testing.T) {
	candidates := []string{"only"}
	rng := rand.New(rand.NewPCG(5, 5))
	if p := pickImage(rng, candidates, "only"); p != "only" {
		t.Errorf("expected the single candidate back, got %q", p)
	}
}
