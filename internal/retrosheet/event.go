package retrosheet

// EventType identifies the fundamental category of a play. The values mirror
// the Retrosheet primary event codes so a parsed Event remains recognizable
// next to its source string.
type EventType string

const (
	Single           EventType = "S"
	Double           EventType = "D"
	Triple           EventType = "T"
	HomeRun          EventType = "HR"
	GroundRuleDouble EventType = "DGR"

	Strikeout EventType = "K"
	Groundout EventType = "G"
	Flyout    EventType = "F"
	Lineout   EventType = "L"
	Popup     EventType = "P"

	SacrificeBunt EventType = "SH"
	SacrificeFly  EventType = "SF"

	StolenBase            EventType = "SB"
	CaughtStealing        EventType = "CS"
	Pickoff               EventType = "PO"
	PickoffCaughtStealing EventType = "POCS"

	Walk            EventType = "W"
	IntentionalWalk EventType = "IW"
	HitByPitch      EventType = "HP"
	ReachedOnError  EventType = "E"
	FieldersChoice  EventType = "FC"
	WildPitch       EventType = "WP"
	PassedBall      EventType = "PB"
	Balk            EventType = "BK"
	NoPlay          EventType = "NP"

	// Unrecognized is the zero value: the primary token matched no rule.
	Unrecognized EventType = ""
)

// FielderRole describes how a fielder participated in the play.
type FielderRole string

const (
	RolePrimary FielderRole = "primary"
	RoleAssist  FielderRole = "assist"
	RolePutout  FielderRole = "putout"
	RoleError   FielderRole = "error"
)

// Fielder is one position in the ball's path. Order within Event.Fielders
// matters: it encodes the sequence of touches (e.g. shortstop to second to
// first).
type Fielder struct {
	Position int
	Role     FielderRole
}

// Location describes where and how the ball was hit. Empty fields mean the
// code did not say.
type Location struct {
	Zone       string // "infield", "outfield" or ""
	Direction  string // "left", "center", "right", "left-center", "left side" or ""
	Depth      string // "deep", "medium", "shallow" or ""
	Trajectory string // "ground ball", "fly ball", "line drive", "popup" or ""
}

const (
	ZoneInfield  = "infield"
	ZoneOutfield = "outfield"

	DirLeft       = "left"
	DirCenter     = "center"
	DirRight      = "right"
	DirLeftCenter = "left-center"
	DirLeftSide   = "left side"

	DepthDeep    = "deep"
	DepthMedium  = "medium"
	DepthShallow = "shallow"

	TrajGround = "ground ball"
	TrajFly    = "fly ball"
	TrajLine   = "line drive"
	TrajPopup  = "popup"
)

// Advance is one runner-movement clause (`1-3`, `2-H(82)`). Fielders is only
// populated when the clause marked the runner out, and IsOut follows from its
// presence in the source, not the other way around.
type Advance struct {
	FromBase int
	ToBase   string // "1", "2", "3" or "H"
	IsOut    bool
	Fielders []int
}

// Event is the structured form of one play code. It is built once per Parse
// call and never mutated afterwards; callers may copy and share it freely.
type Event struct {
	Type     EventType
	Fielders []Fielder
	Location Location
	Advances []Advance

	// Base is the base named by a base-running code: "2", "3" or "H" for
	// SB/CS/POCS, "1", "2" or "3" for PO. Empty for every other category.
	Base string

	// RBI is the +N suffix when present. nil means the code carried no RBI
	// field, which is distinct from an explicit zero.
	RBI *int

	Out             bool
	OutCount        int
	DoublePlay      bool
	TriplePlay      bool
	ReachedOnChoice bool
	FieldingError   bool

	// Raw preserves the original input verbatim for diagnostics.
	Raw string
}
