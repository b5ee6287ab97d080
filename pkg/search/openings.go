package search

// DefaultOpeningLines is a small curated repertoire of well-known openings, used to seed a
// Book via NewBook(search.DefaultOpeningLines). Weight is a rough measure of how often each
// line is played at the master level; NewBook decays it per ply so that book moves deeper
// into well-established theory are preferred less strongly than the opening move itself.
var DefaultOpeningLines = []Line{
	{Weight: 100, Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"}},            // Ruy Lopez
	{Weight: 90, Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}},             // Italian Game
	{Weight: 70, Moves: []string{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "a7a6"}}, // Sicilian Najdorf
	{Weight: 60, Moves: []string{"e2e4", "c7c6", "d2d4", "d7d5"}},                     // Caro-Kann
	{Weight: 55, Moves: []string{"e2e4", "e7e6", "d2d4", "d7d5"}},                     // French Defense
	{Weight: 85, Moves: []string{"d2d4", "d7d5", "c2c4", "e7e6"}},                     // Queen's Gambit Declined
	{Weight: 50, Moves: []string{"d2d4", "d7d5", "c2c4", "c7c6"}},                     // Slav Defense
	{Weight: 75, Moves: []string{"d2d4", "g8f6", "c2c4", "g7g6", "b1c3", "f8g7", "e2e4", "d7d6"}}, // King's Indian Defense
	{Weight: 65, Moves: []string{"d2d4", "g8f6", "c2c4", "e7e6", "b1c3", "f8b4"}},     // Nimzo-Indian
	{Weight: 45, Moves: []string{"c2c4", "e7e5", "b1c3", "g8f6"}},                     // English Opening
}
