package release

import (
	"slices"
	"strings"
)

// ResolveRegion picks the region for a tag list. See the package
// documentation for the exact and partial passes.
func ResolveRegion(tags []string, vocabulary []string) RegionMatch {
	match := RegionMatch{Dir: Unknown, Full: Unknown, Index: -1}

	for i, tag := range tags {
		if tag != "" && slices.Contains(vocabulary, tag) {
			// The furthest match is the region
			match = RegionMatch{Dir: tag, Full: tag, Index: i, Found: true}
		}
	}
	if match.Found {
		return match
	}

	for i, tag := range tags {
		for j := len(vocabulary) - 1; j >= 0; j-- {
			region := vocabulary[j]
			if region == "" {
				continue
			}
			if strings.Contains(tag, region) {
				match = RegionMatch{Dir: region, Full: tag, Index: i, Found: true}
			}
		}
	}

	return match
}
