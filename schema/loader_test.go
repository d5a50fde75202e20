/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package schema

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
schemas:
  - name: Product
    description: Store catalog entries
    id:
      mode: enumerated
      values: [basic, pro]
    properties:
      - name: name
        type: string
        title: Name
      - name: price
        type: number
        title: Price
        default: 0
      - name: status
        type: string
        enum:
          - {id: draft, label: Draft}
          - {id: published, label: Published}
  - name: BlogPost
    properties:
      - name: title
        type: string
`

func TestParse(t *testing.T) {
	schemas, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(schemas) != 2 {
		t.Fatalf("expected 2 schemas, got %d", len(schemas))
	}

	product := schemas[0]
	if product.Name != "Product" {
		t.Errorf("expected name Product, got %q", product.Name)
	}
	if product.ID.Mode != IDEnumerated {
		t.Errorf("expected enumerated id policy, got %q", product.ID.Mode)
	}
	if len(product.ID.Allowed) != 2 || product.ID.Allowed[0] != "basic" {
		t.Errorf("unexpected allowed values: %v", product.ID.Allowed)
	}
	if len(product.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(product.Properties))
	}
	if product.Properties[1].Default != 0 {
		t.Errorf("expected price default 0, got %v", product.Properties[1].Default)
	}
	status, ok := product.Property("status")
	if !ok || len(status.Enum) != 2 {
		t.Errorf("expected status enum with 2 values, got %v", status.Enum)
	}

	// Omitted id block defaults to the auto policy.
	if schemas[1].ID.Mode != IDAuto {
		t.Errorf("expected auto id policy, got %q", schemas[1].ID.Mode)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty file", yaml: ""},
		{name: "no schemas", yaml: "schemas: []"},
		{name: "missing schema name", yaml: "schemas:\n  - description: x"},
		{name: "unknown id mode", yaml: "schemas:\n  - name: A\n    id: {mode: random}"},
		{name: "enumerated without values", yaml: "schemas:\n  - name: A\n    id: {mode: enumerated}"},
		{name: "unknown property type", yaml: "schemas:\n  - name: A\n    properties:\n      - {name: x, type: blob}"},
		{name: "property missing name", yaml: "schemas:\n  - name: A\n    properties:\n      - {type: string}"},
		{name: "duplicate property", yaml: "schemas:\n  - name: A\n    properties:\n      - {name: x, type: string}\n      - {name: x, type: number}"},
		{name: "invalid yaml", yaml: "schemas: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemas.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	schemas, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(schemas) != 2 {
		t.Fatalf("expected 2 schemas, got %d", len(schemas))
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
