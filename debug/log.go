package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a formatted message to stderr.  Maps, slices and structs
// which are not fmt.Stringers are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case fmt.Stringer, error, bool, string, float64, int, int64:
		case map[string]any, map[string]string, []any, []string:
			args[i] = indentJSON(a)
		default:
			if _, err := json.Marshal(a); err == nil {
				args[i] = indentJSON(a)
			}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func indentJSON(a any) string {
	d, err := json.MarshalIndent(a, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", a)
	}
	return string(d)
}
