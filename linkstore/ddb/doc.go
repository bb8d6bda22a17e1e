/*
Package ddb provides a DynamoDB implementation of the linkstore Store
interface.

The store uses a single-table layout:

	PK                  SK              payload
	"<bucket>#<key>"    "DOC"           the document's attribute bag
	"<bucket>#<key>"    "LINKS#<tag>"   Targets: ordered list of "bucket/key"

Documents and their link sets are separate items, so overwriting a document
never drops its links, and replacing one tag's links never touches another's.

Construction:

	store, err := ddb.NewFromCredentials(accessKey, secretKey, region, table,
	    ddb.WithLogger(logger))

For usage examples, see the integration tests.
*/
package ddb
