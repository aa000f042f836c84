// Package dict contains small pure map utilities: deterministic key
// enumeration, safe lookup returning wrap.Maybe, and indexing a slice by a
// derived key.
package dict
