package retrosheet

import (
	"regexp"
	"strconv"
	"strings"
)

// advancePattern matches one runner-advance token: from-base, to-base and an
// optional parenthesized fielder chain marking the runner out.
var advancePattern = regexp.MustCompile(`^([123])-([123H])(\(([1-9]+)\))?$`)

// rbiPattern matches the +N RBI suffix on a primary token.
var rbiPattern = regexp.MustCompile(`\+(\d+)`)

// parseAdvances folds the .-delimited advancement segments into the event.
// Each segment holds ;-separated tokens; tokens that do not match the
// advance grammar are skipped individually so one garbled clause cannot
// corrupt its siblings.
func parseAdvances(ev Event, s string) Event {
	if s == "" {
		return ev
	}
	for _, segment := range strings.Split(s, ".") {
		for _, token := range strings.Split(segment, ";") {
			m := advancePattern.FindStringSubmatch(token)
			if m == nil {
				continue
			}
			adv := Advance{
				FromBase: int(m[1][0] - '0'),
				ToBase:   m[2],
			}
			if m[4] != "" {
				adv.IsOut = true
				for i := 0; i < len(m[4]); i++ {
					adv.Fielders = append(adv.Fielders, int(m[4][i]-'0'))
				}
				ev.OutCount++
			}
			ev.Advances = append(ev.Advances, adv)
		}
	}
	return ev
}

// extractRBI reads the +N suffix from the primary token. Absent means nil,
// which is not the same as an explicit zero.
func extractRBI(ev Event, primary string) Event {
	m := rbiPattern.FindStringSubmatch(primary)
	if m == nil {
		return ev
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ev
	}
	ev.RBI = &n
	return ev
}
