package runner

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// ErrNoCandidateImages means the input directory holds no regular files.
// Fatal; surfaced before the optimization loop starts.
var ErrNoCandidateImages = errors.New("no candidate images in directory")

// listImages returns the paths of all regular files in dir
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, ErrNoCandidateImages
	}
	return paths, nil
}

// pickImage draws a uniformly random path, never repeating previous when
// at least two candidates exist. With a single candidate the repeat is
// allowed: the alternative is an endless retry loop.
func pickImage(rng *rand.Rand, candidates []string, previous string) string {
	if len(candidates) == 1 {
		return candidates[0]
	}
	for {
		p := candidates[rng.IntN(len(candidates))]
		if p != previous {
			return p
		}
	}
}
