// Package bbdb decodes BBDB address-book files into typed entries.
//
// # Usage
//
//	outs, err := bbdb.ReadFile(path)
//	if err != nil {
//	    // I/O failure or grammar contract violation; the run is aborted
//	    return err
//	}
//	for _, o := range outs {
//	    switch o.Status {
//	    case bbdb.OK:
//	        fmt.Println(o.Entry.Name())
//	    case bbdb.Failed:
//	        fmt.Println(o.Err) // "line 12: ..."
//	    }
//	}
//
// Every line yields exactly one [Outcome], in input order.  Lines starting
// with ';' are [Skipped].  Any other line is parsed, built into generic
// values and decoded with [DecodeEntry]; a failure on one line never affects
// another.
//
// # Record Layout
//
// Records are positional vectors:
//
//	[first last <reserved> company (akas...) (phones...) (addresses...) (net...) ((key . "note")...)]
//
// A phone is ["identifier" "number"]; an address is
// ["identifier" ("street"...) "street3" "city" "state" "zip" "country"].
// Trailing fields may be omitted and any optional field may be nil.
//
// # Related Packages
//
//   - github.com/signadot/bbdb/parse - Record grammar
//   - github.com/signadot/bbdb/ir - Generic values and field access
//   - github.com/signadot/bbdb/encode - Rendering of entries
package bbdb
