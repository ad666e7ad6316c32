package lesson

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds how many lesson files List parses at once.
const maxConcurrentReads = 8

// DirSource serves lessons stored as files in a single directory, one file
// per lesson named <id>.json, <id>.jsonc, <id>.yaml or <id>.yml.
type DirSource struct {
	dir string
	log *zap.Logger
}

// NewDirSource returns a source reading lessons from dir.
func NewDirSource(dir string, log *zap.Logger) *DirSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirSource{dir: dir, log: log}
}

// Dir returns the lesson directory.
func (s *DirSource) Dir() string { return s.dir }

// Load reads lesson id. When several files share the ID the first
// extension in lookup order wins.
func (s *DirSource) Load(ctx context.Context, id string) (*Lesson, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, e := range extensions {
		path := filepath.Join(s.dir, id+e.ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading lesson %s: %w", id, err)
		}

		l, err := Parse(data, e.format)
		if err != nil {
			return nil, fmt.Errorf("lesson %s: %w", id, err)
		}
		l.ID = id
		return l, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List parses every lesson file in the directory and returns their
// summaries ordered by ID. Files that fail to parse are logged and
// skipped so one broken lesson does not hide the rest.
func (s *DirSource) List(ctx context.Context) ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading lesson directory: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := FormatFromPath(entry.Name()); err != nil {
			continue
		}
		id := IDFromPath(entry.Name())
		if seen[id] || validID(id) != nil {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	results := make([]*Summary, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, id := range ids {
		g.Go(func() error {
			l, err := s.Load(gctx, id)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				s.log.Warn("skipping lesson", zap.String("id", id), zap.Error(err))
				return nil
			}
			sum := l.Summary()
			results[i] = &sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(results))
	for _, r := range results {
		if r != nil {
			summaries = append(summaries, *r)
		}
	}
	SortSummaries(summaries)
	return summaries, nil
}

// SortSummaries orders summaries by ID, numerically when both IDs are
// numbers so lesson 10 follows lesson 9.
func SortSummaries(summaries []Summary) {
	slices.SortFunc(summaries, func(a, b Summary) int {
		return compareIDs(a.ID, b.ID)
	})
}

func compareIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
