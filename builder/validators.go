// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got >= min, reporting the offending value under ErrTooSmall.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, fmt.Errorf("%s=%d < min=%d: %w", name, got, min, ErrTooSmall))
	}

	return nil
}
