package retrosheet

import "strings"

// primaryRules is evaluated strictly in order. Shorter codes are prefixes of
// longer ones (S/SB/SH, F/FC/SF, D/DGR), so base-running and sacrifice codes
// must be tried before hits, and hits before the single-letter out codes.
// Reordering this table silently changes classification.
var primaryRules = []struct {
	match func(p string) bool
	apply func(b builder, p string) builder
}{
	{matchBaseCode("SB", "23H"), applyRunning(StolenBase, false)},
	{matchBaseCode("CS", "23H"), applyRunning(CaughtStealing, true)},
	{matchPrefix("SH"), applySacrifice(SacrificeBunt)},
	{matchPrefix("SF"), applySacrifice(SacrificeFly)},
	{matchHit("DGR"), applyHit(GroundRuleDouble)},
	{matchHit("S"), applyHit(Single)},
	{matchHit("D"), applyHit(Double)},
	{matchHit("T"), applyHit(Triple)},
	{matchHit("HR"), applyHit(HomeRun)},
	{matchPrefix("K"), applyStrikeout},
	{matchOutChain, applyOutChain},
	{matchExact("W"), applySimple(Walk)},
	{matchExact("IW"), applySimple(IntentionalWalk)},
	{matchExact("HP"), applySimple(HitByPitch)},
	{matchError, applyError},
	{matchPrefix("FC"), applyFieldersChoice},
	{matchBaseCode("POCS", "23H"), applyRunning(PickoffCaughtStealing, true)},
	{matchBaseCode("PO", "123"), applyRunning(Pickoff, true)},
	{matchExact("WP"), applySimple(WildPitch)},
	{matchExact("PB"), applySimple(PassedBall)},
	{matchExact("BK"), applySimple(Balk)},
	{matchExact("NP"), applySimple(NoPlay)},
	{matchBareChain, applyBareChain},
}

// classifyPrimary resolves the pre-modifier, pre-advancement token into the
// play's fundamental category. Tokens matching no rule are left unparsed.
func classifyPrimary(b builder, p string) builder {
	for _, r := range primaryRules {
		if r.match(p) {
			return r.apply(b, p)
		}
	}
	return b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// leadingDigits returns the run of digits at the start of s.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i]
}

func matchExact(code string) func(string) bool {
	return func(p string) bool { return p == code }
}

func matchPrefix(code string) func(string) bool {
	return func(p string) bool { return strings.HasPrefix(p, code) }
}

// matchBaseCode matches codes naming a base, such as SB2 or POCS3.
func matchBaseCode(code, bases string) func(string) bool {
	return func(p string) bool {
		return strings.HasPrefix(p, code) &&
			len(p) > len(code) &&
			strings.IndexByte(bases, p[len(code)]) >= 0
	}
}

// matchHit matches a hit code with an optional fielder digit or RBI suffix.
// A bare prefix match would swallow unrelated codes (S vs SB), so the
// character after the code must be a digit or '+' when present.
func matchHit(code string) func(string) bool {
	return func(p string) bool {
		if !strings.HasPrefix(p, code) {
			return false
		}
		if len(p) == len(code) {
			return true
		}
		c := p[len(code)]
		return isDigit(c) || c == '+'
	}
}

// matchOutChain matches the prefixed out codes: G63, F8, L4, P6 and friends.
func matchOutChain(p string) bool {
	if len(p) < 2 || !isDigit(p[1]) {
		return false
	}
	return p[0] == 'G' || p[0] == 'F' || p[0] == 'L' || p[0] == 'P'
}

func matchError(p string) bool {
	return len(p) >= 2 && p[0] == 'E' && isDigit(p[1])
}

// matchBareChain matches the fallback form: a bare sequence of fielder
// numbers such as 643 or 31.
func matchBareChain(p string) bool {
	return p != "" && leadingDigits(p) == p
}

func applySimple(t EventType) func(builder, string) builder {
	return func(b builder, _ string) builder {
		b.ev.Type = t
		return b
	}
}

func applyRunning(t EventType, out bool) func(builder, string) builder {
	return func(b builder, p string) builder {
		b.ev.Type = t
		b.ev.Base = string(p[len(t)])
		if out {
			b.ev.OutCount = 1
		}
		return b
	}
}

func applyHit(t EventType) func(builder, string) builder {
	return func(b builder, p string) builder {
		b.ev.Type = t
		rest := p[len(t):]
		if len(rest) > 0 && isDigit(rest[0]) {
			pos := int(rest[0] - '0')
			b.ev.Fielders = append(b.ev.Fielders, Fielder{Position: pos, Role: RolePrimary})
			b = setBattedBallZone(b, pos)
		}
		return b
	}
}

func applySacrifice(t EventType) func(builder, string) builder {
	return func(b builder, p string) builder {
		b.ev.Type = t
		b = applyFielderChain(b, leadingDigits(p[2:]))
		if b.ev.OutCount == 0 {
			b.ev.OutCount = 1 // the batter is out on a sacrifice even without fielders
		}
		return b
	}
}

func applyStrikeout(b builder, _ string) builder {
	// Trailing putout digits (K23) are dropped: a strikeout is a pure
	// at-bat result and carries no fielders.
	b.ev.Type = Strikeout
	b.ev.OutCount = 1
	return b
}

func applyOutChain(b builder, p string) builder {
	switch p[0] {
	case 'G':
		b.ev.Type = Groundout
	case 'F':
		b.ev.Type = Flyout
	case 'L':
		b.ev.Type = Lineout
	case 'P':
		b.ev.Type = Popup
	}
	return applyFielderChain(b, leadingDigits(p[1:]))
}

func applyError(b builder, p string) builder {
	b.ev.Type = ReachedOnError
	b.ev.FieldingError = true
	b.ev.Fielders = append(b.ev.Fielders, Fielder{Position: int(p[1] - '0'), Role: RoleError})
	return b
}

func applyFieldersChoice(b builder, p string) builder {
	b.ev.Type = FieldersChoice
	b.ev.ReachedOnChoice = true
	if len(p) > 2 && isDigit(p[2]) {
		b.ev.Fielders = append(b.ev.Fielders, Fielder{Position: int(p[2] - '0'), Role: RolePrimary})
	}
	return b
}

// applyBareChain handles a bare fielder sequence. A lone number is an
// unassisted out whose type is only a default (flyout for outfielders,
// groundout for infielders) until the modifiers have had their say.
func applyBareChain(b builder, p string) builder {
	if len(p) == 1 {
		pos := int(p[0] - '0')
		if pos >= 7 {
			b.ev.Type = Flyout
		} else {
			b.ev.Type = Groundout
		}
		b.typeInferred = true
	} else {
		b.ev.Type = Groundout
	}
	return applyFielderChain(b, p)
}

// applyFielderChain assigns positional roles to a digit sequence: first
// fielder primary, last putout, everyone in between an assist. The chain
// length fixes the out count: three fielders is a double play, more a
// triple play. Shared by the prefixed out codes, the sacrifice codes and
// the bare-chain fallback.
func applyFielderChain(b builder, digits string) builder {
	n := len(digits)
	if n == 0 {
		return b
	}
	for i := 0; i < n; i++ {
		role := RolePrimary
		switch {
		case i == n-1 && n > 1:
			role = RolePutout
		case i > 0:
			role = RoleAssist
		}
		b.ev.Fielders = append(b.ev.Fielders, Fielder{Position: int(digits[i] - '0'), Role: role})
	}
	switch {
	case n <= 2:
		b.ev.OutCount = 1
	case n == 3:
		b.ev.OutCount = 2
		b.ev.DoublePlay = true
	default:
		b.ev.OutCount = 3
		b.ev.TriplePlay = true
	}
	return b
}

// setBattedBallZone derives zone and direction from the fielder who handled
// a batted ball.
func setBattedBallZone(b builder, pos int) builder {
	if pos >= 1 && pos <= 6 {
		b.ev.Location.Zone = ZoneInfield
	} else if pos >= 7 && pos <= 9 {
		b.ev.Location.Zone = ZoneOutfield
		b.ev.Location.Direction = fieldDirections[pos]
	}
	return b
}
