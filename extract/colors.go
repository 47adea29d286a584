package extract

// colorPhrases is the known color vocabulary used by the last extraction
// strategy. Multi-word entries are listed before single-word entries and
// matching always tries longer phrases first, so "Cosmic Orange" wins over
// "Orange" and "Space Black" over "Space".
//
// Kept as a data table rather than inline literals so it can be extended
// (or localized) without touching the extraction logic.
var colorPhrases = []string{
	// Multi-word colors
	"Cosmic Orange", "Deep Blue", "Space Black", "Midnight Black", "Sierra Blue",
	"Desert Titanium", "Natural Titanium", "Blue Titanium", "Black Titanium",
	"White Titanium", "Pacific Blue", "Alpine Green", "Gold Titanium",
	"Silver Titanium", "Dark Purple", "Light Purple", "Forest Green",
	"Ocean Blue", "Sky Blue", "Phantom Black", "Phantom White",
	"Phantom Silver", "Midnight Green", "Product Red", "Starlight Blue",
	"Starlight Green", "Starlight Black", "Starlight White", "Glacier White",
	"Pearl White", "Pearl Black", "Marble White", "Marble Black",
	"Space Gray", "Space Grey",
	// Single-word colors
	"Black", "White", "Silver", "Gold", "Red", "Blue", "Green",
	"Purple", "Pink", "Orange", "Yellow", "Brown", "Grey", "Gray",
	"Titanium", "Rose", "Pearl", "Phantom", "Midnight", "Starlight",
	"Glacier", "Alpine", "Pacific", "Desert", "Cosmic", "Space",
	"Sierra", "Ebony", "Ivory", "Marble", "Onyx",
}

// nonColorSpecs are parenthetical fragments that describe hardware rather
// than finish; a candidate color containing any of them is rejected.
var nonColorSpecs = []string{
	"gb", "mb", "ram", "storage", "rom", "processor", "chip", "inches",
}
