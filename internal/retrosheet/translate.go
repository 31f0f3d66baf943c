package retrosheet

import (
	"fmt"
	"strconv"
	"strings"
)

// outWords maps out categories to their rendered names.
var outWords = map[EventType]string{
	Groundout: "Groundout",
	Flyout:    "Flyout",
	Lineout:   "Lineout",
	Popup:     "Popup",
}

// hitWords maps simple hit categories to their rendered names.
var hitWords = map[EventType]string{
	Single: "Single",
	Double: "Double",
	Triple: "Triple",
}

// Render produces the English description for a structured event. It is a
// pure function of its input and never panics, including on the zero Event.
func Render(ev Event) string {
	if ev.Type == Unrecognized {
		// Best effort for codes no rule claimed: echo the raw code rather
		// than invent a sentence.
		return ev.Raw
	}
	text := describe(ev)
	if ev.RBI != nil && *ev.RBI > 0 {
		text += fmt.Sprintf(", %d RBI", *ev.RBI)
	}
	return text
}

func describe(ev Event) string {
	switch ev.Type {
	case Single, Double, Triple:
		word := hitWords[ev.Type]
		if loc := hitLocation(ev); loc != "" {
			return word + " to " + loc
		}
		return word
	case HomeRun:
		if dir := outfieldDirection(ev); dir != "" {
			return "Home run to " + dir + " field"
		}
		return "Home run"
	case GroundRuleDouble:
		if loc := hitLocation(ev); loc != "" {
			return "Ground rule double to " + loc
		}
		return "Ground rule double"
	case Strikeout:
		return "Struck out"
	case Groundout, Flyout, Lineout, Popup:
		return describeOut(ev)
	case Walk:
		return "Walk"
	case IntentionalWalk:
		return "Intentional walk"
	case HitByPitch:
		return "Hit by pitch"
	case ReachedOnError:
		if len(ev.Fielders) > 0 {
			return "Error by " + PositionName(ev.Fielders[0].Position)
		}
		return "Error"
	case FieldersChoice:
		if len(ev.Fielders) > 0 {
			return "Reached on a fielder's choice to " + PositionName(ev.Fielders[0].Position)
		}
		return "Reached on a fielder's choice"
	case StolenBase:
		return "Stole " + BaseName(ev.Base)
	case CaughtStealing:
		return "Caught stealing " + BaseName(ev.Base)
	case Pickoff:
		return "Picked off " + BaseName(ev.Base)
	case PickoffCaughtStealing:
		return "Picked off and caught stealing " + BaseName(ev.Base)
	case SacrificeBunt:
		if len(ev.Fielders) == 2 {
			return "Sacrifice bunt, " + PositionName(ev.Fielders[0].Position) +
				" to " + PositionName(ev.Fielders[1].Position)
		}
		return "Sacrifice bunt"
	case SacrificeFly:
		if len(ev.Fielders) == 1 {
			return "Sacrifice fly to " + PositionName(ev.Fielders[0].Position)
		}
		return "Sacrifice fly"
	case WildPitch:
		return "Wild pitch"
	case PassedBall:
		return "Passed ball"
	case Balk:
		return "Balk"
	case NoPlay:
		return "No play"
	}
	return ev.Raw
}

// describeOut renders the batted-out categories, including the hyphenated
// fielder-chain notation for double and triple plays.
func describeOut(ev Event) string {
	if ev.TriplePlay {
		return "Grounded into a " + fielderChain(ev) + " triple play"
	}
	if ev.DoublePlay {
		return "Grounded into a " + fielderChain(ev) + " double play"
	}
	word := outWords[ev.Type]
	switch len(ev.Fielders) {
	case 0:
		return word
	case 1:
		return word + " to " + PositionName(ev.Fielders[0].Position)
	default:
		last := ev.Fielders[len(ev.Fielders)-1]
		return word + " to " + PositionName(ev.Fielders[0].Position) +
			", throw to " + PositionName(last.Position)
	}
}

// fielderChain renders raw fielder numbers joined by hyphens: 6-4-3.
func fielderChain(ev Event) string {
	parts := make([]string, len(ev.Fielders))
	for i, f := range ev.Fielders {
		parts[i] = strconv.Itoa(f.Position)
	}
	return strings.Join(parts, "-")
}

// hitLocation phrases where a hit landed: position name for infielders,
// "<direction> field" for the outfield.
func hitLocation(ev Event) string {
	if ev.Location.Direction == DirLeftCenter {
		return "left-center field"
	}
	if len(ev.Fielders) > 0 {
		pos := ev.Fielders[0].Position
		if dir, ok := fieldDirections[pos]; ok {
			return dir + " field"
		}
		return PositionName(pos)
	}
	switch ev.Location.Direction {
	case DirLeft, DirCenter, DirRight:
		return ev.Location.Direction + " field"
	}
	return ""
}

// outfieldDirection reports the direction a ball left the park, when known.
func outfieldDirection(ev Event) string {
	switch ev.Location.Direction {
	case DirLeft, DirCenter, DirRight, DirLeftCenter:
		return ev.Location.Direction
	}
	return ""
}
