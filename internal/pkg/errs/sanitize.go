package errs

import "strings"

// sanitize flattens error messages to a single line so they stay readable
// in logs. Newlines inside user-supplied values are replaced with spaces.
func sanitize(message string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(message)
}
