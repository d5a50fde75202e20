/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package schema

// DataType identifies the declared type of a property value.
type DataType string

const (
	TypeString    DataType = "string"
	TypeNumber    DataType = "number"
	TypeBoolean   DataType = "boolean"
	TypeTimestamp DataType = "timestamp"
	TypeMap       DataType = "map"
	TypeArray     DataType = "array"
	TypeReference DataType = "reference"
)

// EnumValue is one allowed value of an enumerated string property.
type EnumValue struct {
	ID    string
	Label string
}

// Property is a single ordered field declaration in a schema. It is pure
// data; the engine never interprets values beyond the declared default.
type Property struct {
	// Name is the field name in the entity's value map.
	Name string

	// Type is the declared data type.
	Type DataType

	// Title is an optional human-facing label.
	Title string

	// Description is an optional longer description.
	Description string

	// Default is the value used for new entities, nil when absent.
	Default any

	// Enum restricts a string property to a fixed set of values.
	Enum []EnumValue
}

// Builder helpers for declaring properties in code.

// String declares a string property.
func String(name, title string) Property {
	return Property{Name: name, Type: TypeString, Title: title}
}

// Number declares a number property.
func Number(name, title string) Property {
	return Property{Name: name, Type: TypeNumber, Title: title}
}

// Boolean declares a boolean property.
func Boolean(name, title string) Property {
	return Property{Name: name, Type: TypeBoolean, Title: title}
}

// Timestamp declares a timestamp property.
func Timestamp(name, title string) Property {
	return Property{Name: name, Type: TypeTimestamp, Title: title}
}

// Enum declares a string property restricted to the given values.
func Enum(name, title string, values ...EnumValue) Property {
	return Property{Name: name, Type: TypeString, Title: title, Enum: values}
}

// WithDefault returns a copy of the property with the given default value.
func (p Property) WithDefault(v any) Property {
	p.Default = v
	return p
}

// WithDescription returns a copy of the property with the given description.
func (p Property) WithDescription(d string) Property {
	p.Description = d
	return p
}
