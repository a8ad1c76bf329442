package release

import "slices"

// Unknown is used for both RegionDir and RegionFull when no region matched
const Unknown = "Unknown"

// ReleaseInfo is the classification of a single filename
type ReleaseInfo struct {
	// RegionDir is the canonical region used for folder naming, or Unknown
	RegionDir string

	// RegionFull is the tag the region was matched from, or Unknown
	RegionFull string

	// Special is the special category name, empty when there is none
	Special string

	// ExtraInfo holds the tags left after removing the region tag.
	// The special tag is not removed.
	ExtraInfo []string
}

// HasSpecial reports whether a special category was resolved
func (r ReleaseInfo) HasSpecial() bool {
	return r.Special != ""
}

// Category is a special release classifier and the substrings that select it
type Category struct {
	Name        string
	Equivalents []string
}

// RegionMatch is the result of ResolveRegion. Index is only meaningful when
// Found is true.
type RegionMatch struct {
	Dir   string
	Full  string
	Index int
	Found bool
}

// USA first: highest precedence when it comes to retro gaming
var defaultRegions = []string{
	"USA",
	"Europe",
	"Japan",
	"World",
	"Asia",
	"Korea",
	"Australia",
	"Germany",
	"France",
	"Italy",
	"Taiwan",
	"Sweden",
	"Spain",
	"Unknown",
	"Hong Kong",
	"China",
	"Brazil",
	"Canada",
}

var defaultCategories = []Category{
	{Name: "Demo", Equivalents: []string{"Demo"}},
	{Name: "Aftermarket", Equivalents: []string{"Aftermarket"}},
	{Name: "Unlicensed", Equivalents: []string{"Unlicensed", "Unl", "Pirate"}},
	{Name: "Unreleased", Equivalents: []string{"Unreleased", "Proto"}},
}

// Regions returns a copy of the default region vocabulary, highest priority first
func Regions() []string {
	return slices.Clone(defaultRegions)
}

// SpecialCategories returns a copy of the default special category table
func SpecialCategories() []Category {
	return cloneCategories(defaultCategories)
}

func cloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Equivalents: slices.Clone(c.Equivalents)}
	}
	return out
}
