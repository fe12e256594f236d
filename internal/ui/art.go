package ui

// stages are the gallows drawings, one per wrong-guess count. Every stage
// has the same height so the board below it does not shift.
var stages = [][]string{
	{
		"",
		"",
		"",
		"",
		"",
		"",
		"",
	},
	{
		"",
		"",
		"",
		"",
		"",
		"",
		"========",
	},
	{
		"",
		"|",
		"|",
		"|",
		"|",
		"|",
		"========",
	},
	{
		"______",
		"|",
		"|",
		"|",
		"|",
		"|",
		"========",
	},
	{
		"______",
		"|    |",
		"|    O",
		"|",
		"|",
		"|",
		"========",
	},
	{
		"______",
		"|    |",
		"|    O",
		"|   /|\\",
		"|",
		"|",
		"========",
	},
	{
		"______",
		"|    |",
		"|    O",
		"|   /|\\",
		"|   / \\",
		"|",
		"========",
	},
}

// StageCount is the number of drawings.
var StageCount = len(stages)

// Stage returns the drawing for wrong wrong guesses, clamped to the last stage.
func Stage(wrong int) []string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > len(stages)-1 {
		wrong = len(stages) - 1
	}
	return stages[wrong]
}
