package retrosheet

// positionNames maps fielder numbers 1-9 to defensive position names.
var positionNames = [10]string{
	1: "pitcher",
	2: "catcher",
	3: "first baseman",
	4: "second baseman",
	5: "third baseman",
	6: "shortstop",
	7: "left fielder",
	8: "center fielder",
	9: "right fielder",
}

// fieldDirections maps outfield positions to the direction of their field.
var fieldDirections = map[int]string{
	7: DirLeft,
	8: DirCenter,
	9: DirRight,
}

// baseNames maps base tokens to spoken base names. Home is never "home base".
var baseNames = map[string]string{
	"1": "first base",
	"2": "second base",
	"3": "third base",
	"H": "home",
}

// PositionName returns the defensive position name for a fielder number.
// Out-of-range numbers render as "unknown fielder" rather than failing.
func PositionName(pos int) string {
	if pos >= 1 && pos <= 9 {
		return positionNames[pos]
	}
	return "unknown fielder"
}

// BaseName returns the spoken name for a base token ("2" -> "second base").
func BaseName(base string) string {
	if name, ok := baseNames[base]; ok {
		return name
	}
	return "unknown base"
}
