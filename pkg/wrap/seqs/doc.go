// Package seqs contains small pure slice utilities. Lookups that can miss
// return wrap.Maybe instead of a sentinel zero value, and no function ever
// mutates its input.
//
// Highlights:
// - At/First/Last: safe positional access, negative indexes count from the end
// - Swap: copy with two elements exchanged
// - Splice: copy with a range replaced by new items
// - Interleave: alternate elements of two slices
package seqs
