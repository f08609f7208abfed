package affect

// DefaultCatalog returns the shipped 26-entry emotion catalog. Entry order
// is load-bearing (tie-break on classification), so new entries go at the
// end of their category block and existing ones are never reordered.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultDefinitions)
	if err != nil {
		// The shipped table is static; failing to load it is a bug.
		panic(err)
	}
	return catalog
}

var defaultDefinitions = []Definition{
	// Elation (composite 80..100) - hardest band to reach.
	{
		FormalLabel: "Ecstatic", CasualLabel: "ascending on the spot", Glyph: "🚀", Color: "#FFD700",
		Description: "I am overflowing with energy ✨", Category: CategoryElation,
		PleasureRange: Range{80, 100}, ArousalRange: Range{80, 100},
		DominanceRange: Range{60, 100}, CompositeRange: Range{80, 100},
	},
	{
		FormalLabel: "Excited", CasualLabel: "screaming internally", Glyph: "🐔", Color: "#FFC700",
		Description: "So happy I could fly~", Category: CategoryElation,
		PleasureRange: Range{60, 100}, ArousalRange: Range{60, 100},
		DominanceRange: Range{20, 60}, CompositeRange: Range{85, 99},
	},
	{
		FormalLabel: "Proud", CasualLabel: "hands on hips", Glyph: "🦚", Color: "#FFB000",
		Description: "I'm amazing, right?", Category: CategoryElation,
		PleasureRange: Range{60, 100}, ArousalRange: Range{40, 80},
		DominanceRange: Range{70, 100}, CompositeRange: Range{82, 95},
	},

	// Joy (composite 40..79).
	{
		FormalLabel: "Cheerful", CasualLabel: "can't stop smirking", Glyph: "😏", Color: "#32CD32",
		Description: "This is really nice", Category: CategoryJoy,
		PleasureRange: Range{40, 80}, ArousalRange: Range{20, 60},
		DominanceRange: Range{20, 60}, CompositeRange: Range{65, 79},
	},
	{
		FormalLabel: "Content", CasualLabel: "feeling healed", Glyph: "🥹", Color: "#2ECC71",
		Description: "So warm and happy... 💖", Category: CategoryJoy,
		PleasureRange: Range{60, 100}, ArousalRange: Range{-20, 20},
		DominanceRange: Range{40, 80}, CompositeRange: Range{70, 78},
	},
	{
		FormalLabel: "Eager", CasualLabel: "heart going boing", Glyph: "🦌", Color: "#27AE60",
		Description: "I can't wait!", Category: CategoryJoy,
		PleasureRange: Range{30, 70}, ArousalRange: Range{50, 90},
		DominanceRange: Range{-20, 20}, CompositeRange: Range{60, 74},
	},
	{
		FormalLabel: "Delighted", CasualLabel: "pupils quaking", Glyph: "👁️", Color: "#58D68D",
		Description: "Wow! Is this for me?", Category: CategoryJoy,
		PleasureRange: Range{30, 70}, ArousalRange: Range{60, 100},
		DominanceRange: Range{-30, 30}, CompositeRange: Range{55, 69},
	},
	{
		FormalLabel: "Moved", CasualLabel: "defenses breached", Glyph: "🥺", Color: "#52C41A",
		Description: "You're so good to me...", Category: CategoryJoy,
		PleasureRange: Range{50, 90}, ArousalRange: Range{-10, 30},
		DominanceRange: Range{30, 70}, CompositeRange: Range{45, 64},
	},

	// Boredom (composite -10..9) - easiest band to land in.
	{
		FormalLabel: "Bored", CasualLabel: "growing mushrooms", Glyph: "🍄", Color: "#808080",
		Description: "Come play with me...", Category: CategoryBoredom,
		PleasureRange: Range{-30, 30}, ArousalRange: Range{-40, 20},
		DominanceRange: Range{-40, 40}, CompositeRange: Range{-5, 9},
	},
	{
		FormalLabel: "Confused", CasualLabel: "CPU overheating", Glyph: "🔥", Color: "#A9A9A9",
		Description: "What is this?", Category: CategoryBoredom,
		PleasureRange: Range{-30, 30}, ArousalRange: Range{-10, 30},
		DominanceRange: Range{-50, 0}, CompositeRange: Range{-8, 5},
	},
	{
		FormalLabel: "Withdrawn", CasualLabel: "social battery empty", Glyph: "🫣", Color: "#D3D3D3",
		Description: "Please stop looking at me ⁄(⁄ ⁄•⁄ω⁄•⁄ ⁄)⁄", Category: CategoryBoredom,
		PleasureRange: Range{-40, 20}, ArousalRange: Range{0, 40},
		DominanceRange: Range{-70, -20}, CompositeRange: Range{-6, 6},
	},
	{
		FormalLabel: "Embarrassed", CasualLabel: "toes digging a cellar", Glyph: "🏗️", Color: "#696969",
		Description: "Don't laugh at me...", Category: CategoryBoredom,
		PleasureRange: Range{-30, 10}, ArousalRange: Range{30, 70},
		DominanceRange: Range{-50, -10}, CompositeRange: Range{-9, 4},
	},

	// Anxiety (composite -50..-11).
	{
		FormalLabel: "Anxious", CasualLabel: "heart fluttering", Glyph: "💔", Color: "#FF6347",
		Description: "Will it be okay?", Category: CategoryAnxiety,
		PleasureRange: Range{-40, 0}, ArousalRange: Range{20, 60},
		DominanceRange: Range{-80, -30}, CompositeRange: Range{-45, -12},
	},
	{
		FormalLabel: "Worried", CasualLabel: "fretting like a mom", Glyph: "👵", Color: "#FF7F50",
		Description: "What do I do... 😰", Category: CategoryAnxiety,
		PleasureRange: Range{-20, 20}, ArousalRange: Range{10, 50},
		DominanceRange: Range{-70, -20}, CompositeRange: Range{-40, -15},
	},
	{
		FormalLabel: "Sad", CasualLabel: "crying up a storm", Glyph: "😭", Color: "#FF4500",
		Description: "Hold me...", Category: CategoryAnxiety,
		PleasureRange: Range{-80, -40}, ArousalRange: Range{-60, -20},
		DominanceRange: Range{-80, -20}, CompositeRange: Range{-48, -20},
	},
	{
		FormalLabel: "Dejected", CasualLabel: "done with today", Glyph: "🕳️", Color: "#E74C3C",
		Description: "I can't anymore...", Category: CategoryAnxiety,
		PleasureRange: Range{-60, -20}, ArousalRange: Range{-40, 0},
		DominanceRange: Range{-60, -10}, CompositeRange: Range{-49, -25},
	},
	{
		FormalLabel: "Weary", CasualLabel: "battery critically low", Glyph: "🔋", Color: "#CD5C5C",
		Description: "Let me rest a bit...", Category: CategoryAnxiety,
		PleasureRange: Range{-30, 10}, ArousalRange: Range{-80, -40},
		DominanceRange: Range{-60, -10}, CompositeRange: Range{-42, -21},
	},
	{
		FormalLabel: "Remorseful", CasualLabel: "drowning in regret", Glyph: "🥀", Color: "#B22222",
		Description: "I was wrong... 💔", Category: CategoryAnxiety,
		PleasureRange: Range{-60, -20}, ArousalRange: Range{-30, 10},
		DominanceRange: Range{-70, -20}, CompositeRange: Range{-50, -26},
	},

	// Calm (composite 10..39).
	{
		FormalLabel: "Serene", CasualLabel: "quiet good days", Glyph: "🍃", Color: "#4169E1",
		Description: "This is just right", Category: CategoryCalm,
		PleasureRange: Range{20, 60}, ArousalRange: Range{-40, 10},
		DominanceRange: Range{10, 50}, CompositeRange: Range{15, 39},
	},
	{
		FormalLabel: "Relaxed", CasualLabel: "fully horizontal", Glyph: "🛏️", Color: "#3498DB",
		Description: "So comfortable~", Category: CategoryCalm,
		PleasureRange: Range{10, 50}, ArousalRange: Range{-60, -20},
		DominanceRange: Range{20, 60}, CompositeRange: Range{20, 38},
	},
	{
		FormalLabel: "Curious", CasualLabel: "front-row spectating", Glyph: "🍉", Color: "#5DADE2",
		Description: "What's this? 🤔", Category: CategoryCalm,
		PleasureRange: Range{20, 60}, ArousalRange: Range{40, 80},
		DominanceRange: Range{-20, 20}, CompositeRange: Range{12, 35},
	},
	{
		FormalLabel: "Bashful", CasualLabel: "face gone tomato", Glyph: "🍅", Color: "#85C1E9",
		Description: "Stop looking at me", Category: CategoryCalm,
		PleasureRange: Range{40, 80}, ArousalRange: Range{30, 70},
		DominanceRange: Range{-70, -20}, CompositeRange: Range{11, 28},
	},

	// Anger (composite -100..-51) - hardest negative band to reach.
	{
		FormalLabel: "Furious", CasualLabel: "about to detonate", Glyph: "💥", Color: "#DC143C",
		Description: "That's too much! 😡", Category: CategoryAnger,
		PleasureRange: Range{-100, -40}, ArousalRange: Range{50, 100},
		DominanceRange: Range{40, 100}, CompositeRange: Range{-85, -51},
	},
	{
		FormalLabel: "Fearful", CasualLabel: "chills down the spine", Glyph: "👻", Color: "#8B0000",
		Description: "Don't scare me... 😨", Category: CategoryAnger,
		PleasureRange: Range{-80, -40}, ArousalRange: Range{60, 100},
		DominanceRange: Range{-100, -50}, CompositeRange: Range{-100, -70},
	},
	{
		FormalLabel: "Terrified", CasualLabel: "perished on the spot", Glyph: "⚰️", Color: "#A52A2A",
		Description: "Help! Sob...", Category: CategoryAnger,
		PleasureRange: Range{-100, -60}, ArousalRange: Range{70, 100},
		DominanceRange: Range{-100, -60}, CompositeRange: Range{-95, -75},
	},
	{
		FormalLabel: "Irritated", CasualLabel: "do not disturb", Glyph: "🤬", Color: "#FF0000",
		Description: "Leave me alone!", Category: CategoryAnger,
		PleasureRange: Range{-60, -20}, ArousalRange: Range{30, 70},
		DominanceRange: Range{-20, 30}, CompositeRange: Range{-75, -52},
	},
}
