package testmodels

import "github.com/go-openapi/strfmt"

// Product is a sample catalog document used by the DynamoDB integration tests.
type Product struct {

	// Timestamp when the product was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// A description of the product.
	Description *string `json:"Description"`

	// Name of the product.
	// Required: true
	Name *string `json:"Name"`

	// Unit price.
	// Required: true
	Price *float64 `json:"Price"`

	// Timestamp when the product was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}

// Values returns the product as the value map persisted by the engine.
func (p Product) Values() map[string]any {
	values := map[string]any{}
	if p.Name != nil {
		values["Name"] = *p.Name
	}
	if p.Price != nil {
		values["Price"] = *p.Price
	}
	if p.Description != nil {
		values["Description"] = *p.Description
	}
	if p.CreatedAt != nil {
		values["CreatedAt"] = p.CreatedAt.String()
	}
	if p.UpdatedAt != nil {
		values["UpdatedAt"] = p.UpdatedAt.String()
	}
	return values
}
