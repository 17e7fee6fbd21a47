package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"surokkha/internal/core"
)

// CategoryColumns is the canonical categories.csv header.
var CategoryColumns = []string{"Category", "Type"}

// LoadCategories returns every category row. As with transactions, any
// read failure or a file without the expected columns loads as empty.
func (s *Store) LoadCategories(ctx context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCategoriesLocked(ctx)
}

func (s *Store) loadCategoriesLocked(ctx context.Context) ([]core.Category, error) {
	f, err := os.Open(s.categoriesPath)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil || len(records) == 0 {
		slog.WarnContext(ctx, "Categories file unreadable, starting empty",
			"path", s.categoriesPath, "error", err)
		return nil, nil
	}
	if !headerMatches(records[0], CategoryColumns) {
		slog.WarnContext(ctx, "Categories file has unexpected header, starting empty",
			"path", s.categoriesPath)
		return nil, nil
	}

	cats := make([]core.Category, 0, len(records)-1)
	for _, rec := range records[1:] {
		c := core.Category{}
		if len(rec) > 0 {
			c.Name = rec[0]
		}
		if len(rec) > 1 {
			c.Type = core.TxType(rec[1])
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// AppendCategory adds one category and rewrites the file. Duplicates are
// permitted; the category manager has no edit or delete path.
func (s *Store) AppendCategory(ctx context.Context, cat core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, _ := s.loadCategoriesLocked(ctx)
	cats = append(cats, cat)

	f, err := os.Create(s.categoriesPath)
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", s.categoriesPath, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(CategoryColumns); err != nil {
		return fmt.Errorf("rewrite %s: %w", s.categoriesPath, err)
	}
	for _, c := range cats {
		if err := cw.Write([]string{c.Name, string(c.Type)}); err != nil {
			return fmt.Errorf("rewrite %s: %w", s.categoriesPath, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("rewrite %s: %w", s.categoriesPath, err)
	}
	slog.InfoContext(ctx, "Category appended",
		"path", s.categoriesPath, "name", cat.Name, "type", string(cat.Type))
	return nil
}
