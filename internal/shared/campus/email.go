// Package campus defines institutional email rules shared across features.
package campus

import "strings"

// EmailSuffix is the institutional domain suffix that marks an address
// as a student email.
const EmailSuffix = "@cpp.edu"

// IsStudentEmail reports whether the address belongs to the institutional
// domain. The comparison is case-insensitive.
func IsStudentEmail(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), EmailSuffix)
}
