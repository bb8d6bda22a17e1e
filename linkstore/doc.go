/*
Package linkstore defines the external store contract for linked associations.

A linked association does not hold its related documents inline. The owning
document carries tagged outgoing links, and the association layer asks the
store to walk them:

	spec := linkstore.WalkSpec{Tag: "orders", Bucket: "orders"}
	attrs, err := store.Walk(ctx, linkstore.Ref{Bucket: "customers", Key: key}, spec)

Walk returns raw attribute bags; materializing them into typed records is the
caller's concern. UpdateLinks is the write-side counterpart used by the save
cascade to record the current set of linked documents.

Implementations:
  - memstore: in-memory store for tests
  - ddb: DynamoDB-backed store using a single-table layout
*/
package linkstore
