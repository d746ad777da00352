//go:build !unix && !windows

package errors

import "fmt"

// errnoVariants is empty: every code classifies as BadStream.
var errnoVariants = map[int]Variant{}

func errnoName(int) string {
	return ""
}

func errnoDescription(code int) string {
	return fmt.Sprintf("errno %d", code)
}

func errnoFrom(error) (int, bool) {
	return 0, false
}
