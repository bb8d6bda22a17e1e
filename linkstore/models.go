/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package linkstore

import (
	"fmt"
	"strings"
)

// Ref addresses one document in the store.
type Ref struct {
	// Bucket is the storage partition the document lives in.
	Bucket string
	// Key is the document key within the bucket.
	Key string
}

// String renders the ref in "bucket/key" form.
func (r Ref) String() string {
	return r.Bucket + "/" + r.Key
}

// ParseRef parses a "bucket/key" string produced by Ref.String.
func ParseRef(s string) (Ref, error) {
	i := strings.IndexByte(s, '/')
	if i <= 0 || i == len(s)-1 {
		return Ref{}, fmt.Errorf("malformed document ref %q", s)
	}
	return Ref{Bucket: s[:i], Key: s[i+1:]}, nil
}

// WalkSpec selects the outgoing links to follow from a document: links
// carrying Tag that point into Bucket.
type WalkSpec struct {
	// Tag is the link label, by convention the association name.
	Tag string
	// Bucket is the target type's bucket.
	Bucket string
}
