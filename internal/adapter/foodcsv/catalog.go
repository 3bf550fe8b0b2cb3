// Package foodcsv loads the static nutrient dataset from CSV files and serves
// substring searches over it.
package foodcsv

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

// Catalog is an immutable, description-sorted set of foods.
type Catalog struct {
	foods []domain.Food
	lower []string
}

// NewCatalog sorts foods by description and indexes them for search.
func NewCatalog(foods []domain.Food) *Catalog {
	sorted := make([]domain.Food, len(foods))
	copy(sorted, foods)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].Description), strings.ToLower(sorted[j].Description)
		if a != b {
			return a < b
		}
		return sorted[i].Description < sorted[j].Description
	})

	lower := make([]string, len(sorted))
	for i, f := range sorted {
		lower[i] = strings.ToLower(f.Description)
	}

	return &Catalog{foods: sorted, lower: lower}
}

// Load reads every file in dir whose name starts with prefix (case-insensitive)
// and ends in .csv. Files are parsed concurrently; a file that cannot be read
// or parsed is logged and skipped.
func Load(ctx context.Context, dir, prefix string, log *slog.Logger) (*Catalog, error) {
	log = log.With("component", "foodcsv")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %s: %w", dir, err)
	}

	var files []string
	upperPrefix := strings.ToUpper(prefix)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(name), upperPrefix) && strings.HasSuffix(strings.ToLower(name), ".csv") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		log.WarnContext(ctx, "no nutrient files found", slog.String("dir", dir), slog.String("prefix", prefix))
		return NewCatalog(nil), nil
	}

	perFile := make([][]domain.Food, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			foods, err := parseFile(path)
			if err != nil {
				log.ErrorContext(gctx, "skip nutrient file", slog.String("file", path), slog.String("error", err.Error()))
				return nil
			}
			perFile[i] = foods
			log.DebugContext(gctx, "nutrient file loaded", slog.String("file", path), slog.Int("rows", len(foods)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var all []domain.Food
	for _, foods := range perFile {
		all = append(all, foods...)
	}

	log.InfoContext(ctx, "food catalog loaded",
		slog.Int("files", len(files)),
		slog.Int("foods", len(all)),
	)

	return NewCatalog(all), nil
}

func parseFile(path string) ([]domain.Food, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return parse(f)
}

// Len returns the number of foods in the catalog.
func (c *Catalog) Len() int { return len(c.foods) }

// Search returns up to limit foods whose description contains query,
// compared case-insensitively, in description order. An empty query matches
// everything. A non-positive limit means no limit.
func (c *Catalog) Search(query string, limit int) []domain.Food {
	q := strings.ToLower(query)

	out := make([]domain.Food, 0)
	for i, f := range c.foods {
		if limit > 0 && len(out) >= limit {
			break
		}
		if q == "" || strings.Contains(c.lower[i], q) {
			out = append(out, f)
		}
	}
	return out
}
