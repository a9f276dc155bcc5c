package quicksearch

// PageType is the structural category of a documentation page. The set
// is closed: scoring and presentation logic switch exhaustively over it.
type PageType int

// Page type constants. TypeObsolete is a terminal override that demotes
// a page below all non-obsolete results regardless of its original
// category.
const (
	TypeUnknown PageType = iota
	TypeModule
	TypeClass
	TypeStruct
	TypeEnumeration
	TypeInterface
	TypeProperty
	TypeMethod
	TypeEvent
	TypeDelegate
	TypeMessage
	TypeEnumerator
	TypeObsolete
)

var pageTypeNames = map[PageType]string{
	TypeUnknown:     "unknown",
	TypeModule:      "module",
	TypeClass:       "class",
	TypeStruct:      "struct",
	TypeEnumeration: "enumeration",
	TypeInterface:   "interface",
	TypeProperty:    "property",
	TypeMethod:      "method",
	TypeEvent:       "event",
	TypeDelegate:    "delegate",
	TypeMessage:     "message",
	TypeEnumerator:  "enumerator",
	TypeObsolete:    "obsolete",
}

// String returns the lowercase name of the page type.
func (t PageType) String() string {
	if name, ok := pageTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Page is a single documentation page in an index. Pages are identified
// by their position in the owning Index's page sequence; the URL is the
// page's relative identifier within the documentation tree and is
// expected (but not enforced) to be unique within one index.
type Page struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Type        PageType `json:"type"`
}
