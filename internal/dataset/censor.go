package dataset

import "strings"

// CensorGroup is one of four coarse buckets derived from a raw
// age/content rating code.
type CensorGroup string

const (
	CensorAllAges    CensorGroup = "All Ages"
	CensorGuidance   CensorGroup = "Parental Guidance"
	CensorAdultsOnly CensorGroup = "Adults Only"
	CensorUnknown    CensorGroup = "Unknown"
)

// CensorGroups lists the buckets in display order.
var CensorGroups = []CensorGroup{
	CensorAllAges, CensorGuidance, CensorAdultsOnly, CensorUnknown,
}

// ClassifyCensor maps a raw censorship code to its display bucket.
// The function is total: missing, empty, and unrecognized codes all
// degrade to Unknown rather than failing.
func ClassifyCensor(raw string) CensorGroup {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "U", "G":
		return CensorAllAges
	case "UA", "PG", "PG-13":
		return CensorGuidance
	case "A", "R":
		return CensorAdultsOnly
	default:
		return CensorUnknown
	}
}
