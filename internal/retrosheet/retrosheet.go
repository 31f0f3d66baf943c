// Package retrosheet translates Retrosheet play-by-play event codes
// (S8, G63/G6M.3-H;2-H, HR7+4) into structured events and deterministic
// English play descriptions.
//
// The whole package is a pure pipeline: no state survives a call, every
// function of the same input returns the same output, and malformed input
// degrades instead of failing. Parsing never validates the code against game
// state; SB2 parses whether or not a runner stood on first.
package retrosheet

import "strings"

// builder threads parse state between pipeline stages. typeInferred marks an
// event type that was only defaulted from a lone fielder digit and is still
// open to a trajectory-modifier override.
type builder struct {
	ev           Event
	typeInferred bool
}

// Parse converts an event code into its structured form. It is total: any
// string, including the empty string, yields an Event.
func Parse(code string) Event {
	main, advances := splitAdvances(code)
	primary, mods := splitModifiers(main)

	b := builder{ev: Event{Raw: code}}
	b = classifyPrimary(b, primary)
	b = applyModifiers(b, mods)

	ev := parseAdvances(b.ev, advances)
	ev = extractRBI(ev, primary)
	ev.Out = ev.OutCount > 0
	return ev
}

// Translate renders an event code directly to English. It never panics and
// always returns a string, a degraded one for codes it cannot classify.
func Translate(code string) string {
	return Render(Parse(code))
}

// splitAdvances separates the event body from the base-advancement clauses
// after the first '.'.
func splitAdvances(code string) (main, advances string) {
	if i := strings.IndexByte(code, '.'); i >= 0 {
		return code[:i], code[i+1:]
	}
	return code, ""
}

// splitModifiers separates the primary token from its /-separated modifiers.
func splitModifiers(main string) (primary string, mods []string) {
	parts := strings.Split(main, "/")
	return parts[0], parts[1:]
}
