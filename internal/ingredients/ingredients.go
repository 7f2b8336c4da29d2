// Package ingredients converts between the comma-separated ingredient form
// field and the ordered list stored on a recipe.
package ingredients

import "strings"

// Parse splits a comma-separated ingredient string into an ordered list,
// trimming surrounding whitespace from each entry and dropping empties.
func Parse(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// Join is the inverse of [Parse], used to re-populate the edit form.
func Join(list []string) string {
	return strings.Join(list, ", ")
}
