package release

import "strings"

// ResolveSpecial returns the first category with an equivalent contained in
// one of the tags. Tags are the outer loop.
func ResolveSpecial(tags []string, categories []Category) (string, bool) {
	for _, tag := range tags {
		for _, category := range categories {
			for _, equiv := range category.Equivalents {
				if equiv != "" && strings.Contains(tag, equiv) {
					return category.Name, true
				}
			}
		}
	}
	return "", false
}
