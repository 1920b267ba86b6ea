// Package items manages the learning item catalog: schema-validated
// imports and lookups for the scheduling core.
package items

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rkoval/brightpath/internal/store"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// importEntry mirrors one element of the import file's items array.
type importEntry struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
	Level  string `json:"level"`
}

type importFile struct {
	Items []importEntry `json:"items"`
}

// ImportResult summarizes one catalog import.
type ImportResult struct {
	Imported int
	Skipped  int // items whose id already existed
}

// Service provides catalog access.
type Service struct {
	items store.ItemRepo
}

// NewService creates a catalog service over the given repo.
func NewService(items store.ItemRepo) *Service {
	return &Service{items: items}
}

// ImportFile loads items from a JSON catalog file. The file is
// validated against the import schema before any item is written.
// Entries without an id get a generated UUID; entries whose id already
// exists in the catalog are skipped, not overwritten.
func (s *Service) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return s.Import(ctx, raw)
}

// Import loads items from raw JSON catalog bytes.
func (s *Service) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := catalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	var file importFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	result := &ImportResult{}
	for _, entry := range file.Items {
		id := entry.ID
		if id == "" {
			id = uuid.New().String()
		}

		existing, err := s.items.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check item %s: %w", id, err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		err = s.items.Create(ctx, &store.Item{
			ItemID:  id,
			Prompt:  entry.Prompt,
			Answer:  entry.Answer,
			LevelID: entry.Level,
		})
		if err != nil {
			return nil, fmt.Errorf("create item %s: %w", id, err)
		}
		result.Imported++
	}
	return result, nil
}

// Get returns an item by id, or nil if it doesn't exist.
func (s *Service) Get(ctx context.Context, itemID string) (*store.Item, error) {
	return s.items.Get(ctx, itemID)
}

// ListByLevel returns a level's items in insertion order.
func (s *Service) ListByLevel(ctx context.Context, levelID string) ([]*store.Item, error) {
	return s.items.ListByLevel(ctx, levelID)
}

// catalogSchema returns the compiled import schema, compiling it once.
func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(importSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://item-catalog.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://item-catalog.json")
	})
	return compiledSchema, compileErr
}
