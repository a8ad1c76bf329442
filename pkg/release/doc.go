// Package release parses No-Intro/Redump style release names.
//
// Release names carry their metadata in parenthesized tags:
//
//	Super Game (USA) (Rev 1).sfc
//	Super Game (Japan, English Patch) (Demo).sfc
//	Other Game (Europe) (En,Fr,De) (Unl).md
//
// A filename is reduced to a ReleaseInfo in three steps.
//
// # Tag Extraction
//
// ExtractTags returns the contents of every (...) group, left to right. Each
// "(" pairs with the nearest following ")"; nesting is not understood, so
// "((a) b)" yields the single tag "(a".
//
// # Region Resolution
//
// ResolveRegion picks one region from the tags using the priority-ordered
// vocabulary returned by Regions:
//
//   - Exact pass: a tag equal to a vocabulary entry. The rightmost such tag wins.
//   - Partial pass, only when the exact pass found nothing: tags are scanned in
//     order against the vocabulary in reverse order, and every entry contained
//     in a tag replaces the candidate. The last replacement wins, so within one
//     tag the highest priority region it mentions is chosen, and a later tag
//     beats an earlier one.
//   - No match: the region is Unknown.
//
// The matched tag is removed from the tag list. The remaining tags become
// ReleaseInfo.ExtraInfo.
//
// # Special Categories
//
// ResolveSpecial scans the remaining tags against SpecialCategories. Tags
// are scanned in order, then categories, then each category's equivalents.
// The first substring hit wins.
//
// Regions are last-match-wins while specials are first-match-wins. Both rules
// mirror how the naming convention is used in practice and are kept as is.
package release
