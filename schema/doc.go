/*
Package schema holds the declarative entity type descriptors consumed by the
FireCMS persistence engine.

A Schema describes one entity type: its display name, identifier policy,
ordered property declarations, default values for new entities, and the five
optional lifecycle hooks (OnPreSave, OnSaveSuccess, OnSaveFailure, OnPreDelete,
OnDelete). Schemas are built once at configuration time and shared read-only
across all operations, so no synchronization is needed.

Declaring a schema in code:

	product := &schema.Schema{
	    Name: "Product",
	    ID:   schema.AutoID(),
	    Properties: []schema.Property{
	        schema.String("name", "Name"),
	        schema.Number("price", "Price").WithDefault(0.0),
	    },
	    Hooks: schema.Hooks{
	        OnPreSave: func(ctx context.Context, props schema.SaveProps) (map[string]any, error) {
	            props.Values["updatedAt"] = time.Now()
	            return props.Values, nil
	        },
	    },
	}

Schemas can also be loaded from YAML definition files:

	schemas:
	  - name: Product
	    id:
	      mode: enumerated
	      values: [basic, pro]
	    properties:
	      - name: price
	        type: number
	        title: Price
	        default: 0

Hooks cannot be expressed in YAML; attach them to the loaded Schema values
before registering them.
*/
package schema
