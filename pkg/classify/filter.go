package classify

import (
	"strings"

	"github.com/kism/smart-rom-sync/pkg/release"
)

// AlwaysAllowedRegions pass a non-empty region include list
var AlwaysAllowedRegions = []string{"World", release.Unknown}

// Rejection reasons reported by Explain
const (
	ReasonSpecialExcluded    = "special excluded"
	ReasonSpecialNotIncluded = "special not included"
	ReasonRegionExcluded     = "region excluded"
	ReasonRegionNotIncluded  = "region not included"
)

// FilterRule holds the include/exclude lists of one system
type FilterRule struct {
	RegionInclude  []string
	RegionExclude  []string
	SpecialInclude []string
	SpecialExclude []string
}

// AllowSpecial applies the special include/exclude lists to info.ExtraInfo
func (f FilterRule) AllowSpecial(info release.ReleaseInfo) bool {
	return f.specialReason(info) == ""
}

// AllowRegion applies the region include/exclude lists to info.RegionFull
func (f FilterRule) AllowRegion(info release.ReleaseInfo) bool {
	return f.regionReason(info) == ""
}

// Allow reports whether both filters admit info
func (f FilterRule) Allow(info release.ReleaseInfo) bool {
	return f.reason(info) == ""
}

// reason returns "" when admitted, otherwise the first failing check
func (f FilterRule) reason(info release.ReleaseInfo) string {
	if r := f.specialReason(info); r != "" {
		return r
	}
	return f.regionReason(info)
}

func (f FilterRule) specialReason(info release.ReleaseInfo) string {
	for _, tag := range info.ExtraInfo {
		if containsAny(tag, f.SpecialExclude) {
			return ReasonSpecialExcluded
		}
	}

	if len(f.SpecialInclude) > 0 {
		for _, tag := range info.ExtraInfo {
			if containsAny(tag, f.SpecialInclude) {
				return ""
			}
		}
		return ReasonSpecialNotIncluded
	}

	return ""
}

func (f FilterRule) regionReason(info release.ReleaseInfo) string {
	if containsAny(info.RegionFull, f.RegionExclude) {
		return ReasonRegionExcluded
	}

	if len(f.RegionInclude) > 0 {
		if containsAny(info.RegionFull, f.RegionInclude) || containsAny(info.RegionFull, AlwaysAllowedRegions) {
			return ""
		}
		return ReasonRegionNotIncluded
	}

	return ""
}

// containsAny reports whether s contains any of the substrings
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
