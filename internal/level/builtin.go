package level

// Builtin returns all built-in levels, classic first.
func Builtin() []Level {
	return []Level{
		{
			ID:   "classic",
			Name: "Classic",
			Map: []string{
				"#####",
				"SSSSS",
				"++#--",
				"W###F",
				">###<",
				"##M#L",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
				"     ",
			},
		},
		{
			ID:   "locks",
			Name: "Two Locks",
			Map: []string{
				"L       l",
				"M       m",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
			},
		},
		{
			ID:   "strong",
			Name: "Strength Test",
			Map: []string{
				"#########",
				"FFFFWWWW ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
			},
		},
		{
			ID:   "sturdy",
			Name: "Sturdy Row",
			Map: []string{
				"SSSSS",
				"     ",
				"     ",
				"     ",
				"     ",
			},
		},
		{
			ID:   "mixed",
			Name: "Mixed Wall",
			Map: []string{
				"S#S#SS#S#SS",
				"S#S#S#M#L#S",
				"           ",
				"           ",
				"           ",
				"           ",
				"           ",
				"           ",
			},
		},
		{
			ID:   "speed",
			Name: "Speed Trap",
			Map: []string{
				">###>##>#",
				"#########",
				"<##<#<###",
				"###<#####",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
				"         ",
			},
		},
		{
			ID:   "keyring",
			Name: "Key Ring",
			Map: []string{
				"FFMMLM##L#FF",
				"FFMmlm#m#MFF",
				"FFM      MFF",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
			},
		},
		{
			ID:   "ogp",
			Name: "Gates",
			Map: []string{
				"M          L",
				"  #      #  ",
				"  #      #  ",
				">>#      #<<",
				"++#  SS  #++",
				"            ",
				"FFFFFFFFFFFF",
				"            ",
				"            ",
				"            ",
				"            ",
			},
		},
		{
			ID:   "oop",
			Name: "Open Gates",
			Map: []string{
				"            ",
				"  #      #  ",
				"  #      #  ",
				">>#      #<<",
				"++#  SS  #++",
				"            ",
				"FFFFFFFFFFFF",
				"            ",
				"            ",
				"            ",
				"            ",
			},
		},
	}
}

// BuiltinByID returns a copy of the built-in level with the given id.
func BuiltinByID(id string) (Level, bool) {
	for _, l := range Builtin() {
		if l.ID == id {
			return l.Clone(), true
		}
	}
	return Level{}, false
}

// DefaultID is the level played when none is named.
const DefaultID = "classic"
