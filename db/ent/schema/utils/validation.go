package utils

import "fmt"

// EnumValidator returns an ent field validator that accepts only the given
// values. Used for string columns backed by the constants package.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
