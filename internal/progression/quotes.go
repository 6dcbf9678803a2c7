package progression

// Quotes are shown while a level loads.
var Quotes = []string{
	"Life exists in the spaces between permanence...",
	"Every step forward is a step toward dissolution.",
	"What you build will crumble. What remains?",
	"Time respects no creation.",
	"The only constant is the inevitable end.",
	"Progress and decay are one and the same.",
	"You cannot stop what has already begun.",
	"All things return to the void.",
	"Even memory fades into static.",
	"The universe tends toward chaos.",
	"What was solid becomes shadow.",
	"Your footprints disappear behind you.",
}
