package release

import "regexp"

var tagPattern = regexp.MustCompile(`\((.*?)\)`)

// ExtractTags returns the contents of each parenthesized group in filename,
// left to right. The result is never nil.
func ExtractTags(filename string) []string {
	groups := tagPattern.FindAllStringSubmatch(filename, -1)
	tags := make([]string, 0, len(groups))
	for _, g := range groups {
		tags = append(tags, g[1])
	}
	return tags
}
