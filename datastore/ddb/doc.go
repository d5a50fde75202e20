/*
Package ddb provides a DynamoDB implementation of the DocumentStore interface.

The Store uses a single-table layout: the partition key (PK) holds the
collection path and the sort key (SK) holds the entity id. Entity values are
flattened into the item alongside the keys, so the persisted shape is entirely
determined by the caller's value map.

Identifier assignment:
When Save is called with an empty id, the store assigns a UUID, matching the
behavior of document databases that mint identifiers server-side.

Conditional writes:
  - Delete uses attribute_exists so deleting a missing or already-deleted
    record surfaces errors.ErrNotFound instead of succeeding silently.
  - Create uses attribute_not_exists so creating over an existing record
    surfaces errors.ErrAlreadyExists.

Construction:

	client, err := ddb.NewClient(accessKey, secretKey, region)
	store := ddb.New(client, "cms-entities")

For usage examples, see the integration tests.
*/
package ddb
