package retrosheet

// trajectoryCodes maps the leading letter of a modifier to a batted-ball
// trajectory and the out type it implies.
var trajectoryCodes = map[byte]struct {
	trajectory string
	outType    EventType
}{
	'F': {TrajFly, Flyout},
	'L': {TrajLine, Lineout},
	'G': {TrajGround, Groundout},
	'P': {TrajPopup, Popup},
}

// applyModifiers folds the /-separated modifier tokens into the event.
func applyModifiers(b builder, mods []string) builder {
	for _, m := range mods {
		b = applyModifier(b, m)
	}
	return b
}

func applyModifier(b builder, m string) builder {
	if m == "" {
		return b
	}
	if t, ok := trajectoryCodes[m[0]]; ok {
		b.ev.Location.Trajectory = t.trajectory
		// A lone fielder number only guessed at the out type; the
		// trajectory letter is authoritative (5/L5 is a lineout, not the
		// groundout a bare 5 would default to).
		if b.typeInferred {
			b.ev.Type = t.outType
			b.typeInferred = false
		}
		return applyLocationCode(b, m[1:], 0)
	}
	// Directions are scanned from the second character so the check never
	// clashes with a leading trajectory letter.
	return applyLocationCode(b, m, 1)
}

// applyLocationCode refines depth, direction and zone from a location code.
// dirFrom is the first index eligible for the L/R direction scan.
func applyLocationCode(b builder, s string, dirFrom int) builder {
	if s == "" {
		return b
	}

	switch s[len(s)-1] {
	case 'D':
		b.ev.Location.Depth = DepthDeep
		s = s[:len(s)-1]
	case 'S':
		b.ev.Location.Depth = DepthShallow
		s = s[:len(s)-1]
	case 'M':
		b.ev.Location.Depth = DepthMedium
		s = s[:len(s)-1]
	}

	for i := dirFrom; i < len(s); i++ {
		switch s[i] {
		case 'L':
			b.ev.Location.Direction = DirLeft
		case 'R':
			b.ev.Location.Direction = DirRight
		}
	}

	switch {
	case s == "78":
		b.ev.Location.Direction = DirLeftCenter
		b.ev.Location.Zone = ZoneOutfield
	case s == "56":
		b.ev.Location.Direction = DirLeftSide
		b.ev.Location.Zone = ZoneInfield
	case len(s) == 1 && s[0] >= '1' && s[0] <= '9':
		pos := int(s[0] - '0')
		if pos <= 6 {
			b.ev.Location.Zone = ZoneInfield
		} else {
			b.ev.Location.Zone = ZoneOutfield
			if b.ev.Location.Direction == "" {
				b.ev.Location.Direction = fieldDirections[pos]
			}
		}
		b = addFielderOnce(b, pos)
	}
	return b
}

// addFielderOnce records a location-derived fielder unless the position is
// already on the play.
func addFielderOnce(b builder, pos int) builder {
	for _, f := range b.ev.Fielders {
		if f.Position == pos {
			return b
		}
	}
	b.ev.Fielders = append(b.ev.Fielders, Fielder{Position: pos, Role: RolePrimary})
	return b
}
