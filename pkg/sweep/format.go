package sweep

import "fmt"

// Pad2 renders a grid dimension value the way filenames and tool flags
// expect it: zero-padded to exactly two digits for values 0-99. Values of
// 100 or more render at their natural width; the filename grammar makes
// no fixed-width promise past two digits. Negative values keep their sign
// and are rejected upstream by configuration validation.
func Pad2(v int) string {
	return fmt.Sprintf("%02d", v)
}
