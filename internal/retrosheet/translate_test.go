package retrosheet

import "testing"

// TestTranslate covers the full code-to-English surface, category by
// category. Expected strings are exact.
func TestTranslate(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		// Hits.
		{"S", "Single"},
		{"S1", "Single to pitcher"},
		{"S3", "Single to first baseman"},
		{"S6", "Single to shortstop"},
		{"S7", "Single to left field"},
		{"S8", "Single to center field"},
		{"S9", "Single to right field"},
		{"D4", "Double to second baseman"},
		{"D7", "Double to left field"},
		{"D8", "Double to center field"},
		{"T9", "Triple to right field"},
		{"T5", "Triple to third baseman"},
		{"DGR", "Ground rule double"},
		{"DGR8", "Ground rule double to center field"},

		// Home runs.
		{"HR", "Home run"},
		{"HR7", "Home run to left field"},
		{"HR8", "Home run to center field"},
		{"HR9", "Home run to right field"},
		{"HR/F78", "Home run to left-center field"},
		{"HR7+4", "Home run to left field, 4 RBI"},

		// Pure at-bat results.
		{"K", "Struck out"},
		{"K23", "Struck out"},
		{"W", "Walk"},
		{"IW", "Intentional walk"},
		{"HP", "Hit by pitch"},

		// Prefixed outs.
		{"G6", "Groundout to shortstop"},
		{"G63", "Groundout to shortstop, throw to first baseman"},
		{"F8", "Flyout to center fielder"},
		{"F9", "Flyout to right fielder"},
		{"L4", "Lineout to second baseman"},
		{"P6", "Popup to shortstop"},
		{"P2", "Popup to catcher"},

		// Bare fielder chains and their defaults.
		{"7", "Flyout to left fielder"},
		{"8", "Flyout to center fielder"},
		{"9", "Flyout to right fielder"},
		{"1", "Groundout to pitcher"},
		{"3", "Groundout to first baseman"},
		{"6", "Groundout to shortstop"},
		{"31", "Groundout to first baseman, throw to pitcher"},
		{"63", "Groundout to shortstop, throw to first baseman"},

		// Double and triple plays use raw fielder numbers.
		{"643", "Grounded into a 6-4-3 double play"},
		{"543", "Grounded into a 5-4-3 double play"},
		{"163", "Grounded into a 1-6-3 double play"},
		{"5643", "Grounded into a 5-6-4-3 triple play"},
		{"G643", "Grounded into a 6-4-3 double play"},

		// Modifier overrides on bare fielder numbers.
		{"5/L5", "Lineout to third baseman"},
		{"4/P4", "Popup to second baseman"},
		{"7/F7D", "Flyout to left fielder"},
		{"8/F8", "Flyout to center fielder"},
		{"6/G6M", "Groundout to shortstop"},
		{"3/G3S", "Groundout to first baseman"},

		// Errors and fielder's choice.
		{"E4", "Error by second baseman"},
		{"E1", "Error by pitcher"},
		{"E0", "Error by unknown fielder"},
		{"FC", "Reached on a fielder's choice"},
		{"FC6", "Reached on a fielder's choice to shortstop"},

		// Base running.
		{"SB2", "Stole second base"},
		{"SB3", "Stole third base"},
		{"SBH", "Stole home"},
		{"CS2", "Caught stealing second base"},
		{"CS3", "Caught stealing third base"},
		{"CSH", "Caught stealing home"},
		{"PO1", "Picked off first base"},
		{"PO2", "Picked off second base"},
		{"PO3", "Picked off third base"},
		{"POCS2", "Picked off and caught stealing second base"},
		{"POCSH", "Picked off and caught stealing home"},

		// Sacrifices.
		{"SH", "Sacrifice bunt"},
		{"SH13", "Sacrifice bunt, pitcher to first baseman"},
		{"SH23", "Sacrifice bunt, catcher to first baseman"},
		{"SF7", "Sacrifice fly to left fielder"},
		{"SF9", "Sacrifice fly to right fielder"},
		{"SF", "Sacrifice fly"},

		// Miscellaneous.
		{"WP", "Wild pitch"},
		{"PB", "Passed ball"},
		{"BK", "Balk"},
		{"NP", "No play"},

		// RBI suffix applies across categories and renders after everything.
		{"S8+2.3-H;2-H;1-3", "Single to center field, 2 RBI"},
		{"S7+1", "Single to left field, 1 RBI"},
		{"D8+2", "Double to center field, 2 RBI"},
		{"S8+0", "Single to center field"},

		// Advancement clauses never change the sentence for the play itself.
		{"G63/G6M.3-H;2-H", "Groundout to shortstop, throw to first baseman"},
		{"S8.GARBAGE;2-H", "Single to center field"},
		{"643.3-H", "Grounded into a 6-4-3 double play"},

		// Unrecognized codes echo the raw input.
		{"", ""},
		{"XYZ", "XYZ"},
		{"99Q", "99Q"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got := Translate(tc.code)
			if got != tc.want {
				t.Errorf("Translate(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

// TestTranslatePrecedence pins the prefix-ordering invariants: base-running
// and sacrifice codes share first letters with hits and flyouts and must
// never be mistaken for them.
func TestTranslatePrecedence(t *testing.T) {
	cases := []struct {
		code      string
		want      string
		forbidden string
	}{
		{"SB2", "Stole second base", "Single"},
		{"SB3", "Stole third base", "Single"},
		{"SH13", "Sacrifice bunt, pitcher to first baseman", "Single"},
		{"SF7", "Sacrifice fly to left fielder", "Flyout"},
		{"DGR8", "Ground rule double to center field", "Double to"},
		{"POCS3", "Picked off and caught stealing third base", "Popup"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got := Translate(tc.code)
			if got != tc.want {
				t.Errorf("Translate(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestTranslateDeterminism(t *testing.T) {
	codes := []string{"S8", "G63/G6M.3-H;2-H;1-3", "HR7+4", "643", "SB2", "", "XYZ"}
	for _, code := range codes {
		first := Translate(code)
		for i := 0; i < 5; i++ {
			if got := Translate(code); got != first {
				t.Fatalf("Translate(%q) not deterministic: %q then %q", code, first, got)
			}
		}
	}
}

// TestTranslateTotality feeds garbage; every call must return without
// panicking.
func TestTranslateTotality(t *testing.T) {
	garbage := []string{
		"", ".", "..", "...", "/", "//", "///", ";", "S8//", "S8/.",
		"+", "+4", "-", "1-", "-2", ".1-2", "SB", "CS", "PO", "POCS",
		"E", "K/", "HR+", "G", "F", "日本語", "\x00\xff", "S8.1-2;;3-H",
		"9999999999", "FC/", "SH/", "()", "S8.(12)", "2-H(9)",
	}
	for _, code := range garbage {
		t.Run(code, func(t *testing.T) {
			_ = Translate(code)
			ev := Parse(code)
			if ev.Raw != code {
				t.Errorf("Parse(%q).Raw = %q", code, ev.Raw)
			}
		})
	}
}
