package quicksearch

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a Unity major.minor release, e.g. 2019.3. Versions
// order lexicographically by (major, minor). The zero value is the
// "unknown" sentinel recorded when a build cannot determine its
// documentation version; it never participates in exact matching.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// ParseVersion parses a plain "major.minor" string.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := splitVersion(s, 2)
	if !ok {
		return Version{}, Errorf(EINVALID, "invalid version %q: want major.minor", s)
	}
	return Version{Major: major, Minor: minor}, nil
}

// ParsePlatformVersion parses a full Unity version string such as
// "2019.3.7f1". Only the major and minor components are kept; the patch
// component is discarded but must be present.
func ParsePlatformVersion(s string) (Version, error) {
	major, minor, ok := splitVersion(s, 3)
	if !ok {
		return Version{}, Errorf(EINVALID, "invalid platform version %q: want major.minor.patch", s)
	}
	return Version{Major: major, Minor: minor}, nil
}

func splitVersion(s string, parts int) (major, minor int, ok bool) {
	fields := strings.SplitN(s, ".", parts)
	if len(fields) != parts {
		return 0, 0, false
	}
	major, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	if parts == 3 && fields[2] == "" {
		return 0, 0, false
	}
	return major, minor, true
}

// Compare returns -1 if v orders before o, +1 if after, and 0 if equal.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor != o.Minor:
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// IsZero reports whether v is the unknown sentinel.
func (v Version) IsZero() bool {
	return v == Version{}
}

// String returns the "major.minor" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
