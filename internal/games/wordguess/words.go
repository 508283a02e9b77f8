package wordguess

// wordList is the built-in pool of answers, uppercase A-Z only.
var wordList = []string{
	"ANCHOR", "BALLOON", "CACTUS", "DOLPHIN", "EMBER",
	"FALCON", "GALAXY", "HARBOR", "ISLAND", "JUNGLE",
	"KERNEL", "LANTERN", "MARBLE", "NEBULA", "ORCHID",
	"PUZZLE", "QUARTZ", "RIPPLE", "SADDLE", "TEMPLE",
	"UMBRELLA", "VOYAGE", "WALNUT", "XYLOPHONE", "YONDER",
	"ZEPHYR", "BREEZE", "CANYON", "DRIFT", "FOREST",
	"GLACIER", "HOLLOW", "INLET", "LAGOON", "MEADOW",
	"OASIS", "PRAIRIE", "RIDGE", "SUMMIT", "TUNDRA",
}
