package handler_test

import "fmt"

// respPath builds a path from a JSON-decoded numeric id (float64).
func respPath(format string, args ...interface{}) string {
	for i, a := range args {
		if f, ok := a.(float64); ok {
			args[i] = int64(f)
		}
	}
	return fmt.Sprintf(format, args...)
}
