package platform

import (
	"runtime"
	"strings"
)

// Platform identifies an operating system a capability can run on. Specific
// platforms roll up into a family (WIN10 -> WINDOWS, LINUX -> UNIX) which is
// what the node uses for coarse compatibility checks against the machine it
// runs on.
type Platform string

const (
	// Any matches every platform.
	Any Platform = "ANY"

	// Families.
	Windows Platform = "WINDOWS"
	Unix    Platform = "UNIX"
	Mac     Platform = "MAC"

	// Specific platforms.
	Win10 Platform = "WIN10"
	Win11 Platform = "WIN11"
	Linux Platform = "LINUX"
)

// families maps each specific platform to its family. Family platforms and
// Any are absent on purpose.
var families = map[Platform]Platform{
	Win10: Windows,
	Win11: Windows,
	Linux: Unix,
}

// aliases covers the spellings accepted in config files beyond the canonical
// constant names.
var aliases = map[string]Platform{
	"*":          Any,
	"WINDOWS 10": Win10,
	"WINDOWS 11": Win11,
	"DARWIN":     Mac,
	"MACOS":      Mac,
	"OSX":        Mac,
}

// Current returns the platform of the machine this process runs on.
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Mac
	case "linux":
		return Linux
	default:
		return Unix
	}
}

// Family returns the family this platform belongs to, or the empty Platform
// when it has no broader family (families and Any have none).
func (p Platform) Family() Platform {
	return families[p]
}

// Is reports whether p is the given platform or belongs to its family.
func (p Platform) Is(other Platform) bool {
	return p == other || p.Family() == other
}

// FromString parses a platform value from a config file. The empty string and
// unknown names yield ok == false.
func FromString(s string) (Platform, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return "", false
	}
	if p, ok := aliases[upper]; ok {
		return p, true
	}
	switch p := Platform(upper); p {
	case Any, Windows, Unix, Mac, Win10, Win11, Linux:
		return p, true
	}
	return "", false
}
