// Package libdiff compares two sequences of decoded entries.
//
// # Usage
//
//	diffs := libdiff.DiffEntries(before, after)
//	for _, d := range diffs {
//	    fmt.Print(d)
//	}
//
// Entries are matched by name.  Repeated names are told apart by their
// occurrence, "Jo Doe", "Jo Doe#2" and so on.  Matched entries whose text
// renderings differ are reported as changed with a line diff.
package libdiff
