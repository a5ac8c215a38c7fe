package catalog

func init() {
	Register(Catalog{
		Name:  "animals",
		Title: "Animals & Flowers",
		Symbols: []string{
			"🐶", "🐱", "🐭", "🐹", "🐰", "🦊",
			"🐻", "🐼", "🐨", "🐯", "🦁", "🐮",
			"🐷", "🐸", "🐵", "🐔", "🐧", "🐦",
			"🦆", "🦉", "🦋", "🐝", "🐞", "🦄",
			"🌈", "⭐", "🌸", "🌺", "🌻", "🌼",
		},
	})

	// For terminals without emoji fonts.
	Register(Catalog{
		Name:  "letters",
		Title: "Letters",
		Symbols: []string{
			"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
			"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
			"U", "V", "W", "X", "Y", "Z", "1", "2", "3", "4",
		},
	})

	Register(Catalog{
		Name:  "shapes",
		Title: "Shapes",
		Symbols: []string{
			"●", "■", "▲", "◆", "★", "♥", "♣", "♠", "♦", "☀",
			"☂", "☘", "♪", "✿", "❄", "☾", "✚", "◐", "▣", "⬟",
			"✦", "✖", "☯", "⚑", "♞", "⌘", "☁", "⚓", "✈", "☕",
		},
	})
}
