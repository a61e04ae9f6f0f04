package permissions

import "fmt"

// EnsureName validates that a group or list name uses only lowercase
// alphanumericals and underscores.
func EnsureName(name string) error {
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '_' {
			continue
		}
		return fmt.Errorf("%q must only include lowercase alphanumericals and underscores", name)
	}
	return nil
}
