/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile is the top-level shape of a schema definition file.
type yamlFile struct {
	Schemas []yamlSchema `yaml:"schemas"`
}

type yamlSchema struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	ID          yamlIDPolicy   `yaml:"id"`
	Properties  []yamlProperty `yaml:"properties"`
}

type yamlIDPolicy struct {
	Mode   string   `yaml:"mode"`
	Values []string `yaml:"values"`
}

type yamlProperty struct {
	Name        string          `yaml:"name"`
	Type        string          `yaml:"type"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Default     any             `yaml:"default"`
	Enum        []yamlEnumValue `yaml:"enum"`
}

type yamlEnumValue struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

var knownTypes = map[string]DataType{
	string(TypeString):    TypeString,
	string(TypeNumber):    TypeNumber,
	string(TypeBoolean):   TypeBoolean,
	string(TypeTimestamp): TypeTimestamp,
	string(TypeMap):       TypeMap,
	string(TypeArray):     TypeArray,
	string(TypeReference): TypeReference,
}

// Load reads and parses a schema definition file.
// Hooks cannot be declared in YAML; attach them in code after loading.
func Load(path string) ([]*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

// Parse parses schema definitions from YAML bytes.
func Parse(data []byte) ([]*Schema, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	if len(file.Schemas) == 0 {
		return nil, fmt.Errorf("schema file declares no schemas")
	}

	schemas := make([]*Schema, 0, len(file.Schemas))
	for i, ys := range file.Schemas {
		s, err := ys.toSchema()
		if err != nil {
			return nil, fmt.Errorf("schema #%d: %w", i, err)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func (ys yamlSchema) toSchema() (*Schema, error) {
	if ys.Name == "" {
		return nil, fmt.Errorf("missing name")
	}

	policy, err := ys.ID.toPolicy()
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", ys.Name, err)
	}

	seen := make(map[string]bool, len(ys.Properties))
	props := make([]Property, 0, len(ys.Properties))
	for _, yp := range ys.Properties {
		p, err := yp.toProperty()
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", ys.Name, err)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("schema %q: duplicate property %q", ys.Name, p.Name)
		}
		seen[p.Name] = true
		props = append(props, p)
	}

	return &Schema{
		Name:        ys.Name,
		Description: ys.Description,
		ID:          policy,
		Properties:  props,
	}, nil
}

func (yp yamlIDPolicy) toPolicy() (IDPolicy, error) {
	switch yp.Mode {
	case "", string(IDAuto):
		return AutoID(), nil
	case string(IDCustom):
		return CustomID(), nil
	case string(IDEnumerated):
		if len(yp.Values) == 0 {
			return IDPolicy{}, fmt.Errorf("enumerated id policy requires values")
		}
		return EnumeratedID(yp.Values...), nil
	default:
		return IDPolicy{}, fmt.Errorf("unknown id mode %q", yp.Mode)
	}
}

func (yp yamlProperty) toProperty() (Property, error) {
	if yp.Name == "" {
		return Property{}, fmt.Errorf("property missing name")
	}
	typ, ok := knownTypes[yp.Type]
	if !ok {
		return Property{}, fmt.Errorf("property %q: unknown type %q", yp.Name, yp.Type)
	}

	enum := make([]EnumValue, 0, len(yp.Enum))
	for _, ev := range yp.Enum {
		enum = append(enum, EnumValue{ID: ev.ID, Label: ev.Label})
	}
	if len(enum) == 0 {
		enum = nil
	}

	return Property{
		Name:        yp.Name,
		Type:        typ,
		Title:       yp.Title,
		Description: yp.Description,
		Default:     yp.Default,
		Enum:        enum,
	}, nil
}
