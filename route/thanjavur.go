package route

// thanjavur.go - canned Thanjavur–Nagapattinam district road map.
//
// A data-only registry of 23 two-way roads across 24 towns of the
// Thanjavur, Thiruvarur and Nagapattinam districts, with distances in
// kilometers. Declaration order is stable and part of the dataset: it
// fixes neighbor enumeration, and through it breadth-first tie-breaking.

// ThanjavurLinks returns the 23 declared roads of the district map.
// The returned slice is fresh on every call; callers may reorder it.
func ThanjavurLinks() []Link {
	return []Link{
		{From: "Thanjavur", To: "Vallam", Dist: 10},
		{From: "Thanjavur", To: "Thiruvaiyaru", Dist: 13},
		{From: "Thanjavur", To: "Orathanadu", Dist: 25},
		{From: "Thanjavur", To: "Ayyampettai", Dist: 24},
		{From: "Vallam", To: "Budalur", Dist: 12},
		{From: "Vallam", To: "Pattukkottai", Dist: 35},
		{From: "Pattukkottai", To: "Peravurani", Dist: 18},
		{From: "Orathanadu", To: "Mannargudi", Dist: 30},
		{From: "Mannargudi", To: "Needamangalam", Dist: 12},
		{From: "Needamangalam", To: "Thiruthuraipoondi", Dist: 26},
		{From: "Ayyampettai", To: "Papanasam", Dist: 6},
		{From: "Papanasam", To: "Kumbakonam", Dist: 14},
		{From: "Kumbakonam", To: "Swamimalai", Dist: 6},
		{From: "Kumbakonam", To: "Aduthurai", Dist: 9},
		{From: "Aduthurai", To: "Thiruvidaimarudur", Dist: 5},
		{From: "Papanasam", To: "Thirukarukkavur", Dist: 10},
		{From: "Thirukarukkavur", To: "Palayur", Dist: 15},
		{From: "Palayur", To: "Kudavasal", Dist: 12},
		{From: "Kudavasal", To: "Mallakalyanam", Dist: 9},
		{From: "Mallakalyanam", To: "Thiruvarur", Dist: 15},
		{From: "Thiruvarur", To: "Nagapattinam", Dist: 24},
		{From: "Nagapattinam", To: "Sirkazhi", Dist: 35},
		{From: "Thiruvarur", To: "Vedaranyam", Dist: 40},
	}
}

// ThanjavurLocations returns approximate planar coordinates for the towns
// on the district map, in kilometers east/north of Thanjavur. Only the
// straight-line heuristic hook of informed algorithms consumes these;
// breadth-first search ignores them.
func ThanjavurLocations() map[string]Coord {
	return map[string]Coord{
		"Thanjavur":         {X: 0, Y: 0},
		"Vallam":            {X: -7, Y: -5},
		"Thiruvaiyaru":      {X: 2, Y: 12},
		"Orathanadu":        {X: 8, Y: -21},
		"Ayyampettai":       {X: 18, Y: 10},
		"Budalur":           {X: -18, Y: -2},
		"Pattukkottai":      {X: -2, Y: -38},
		"Peravurani":        {X: -10, Y: -53},
		"Mannargudi":        {X: 35, Y: -24},
		"Needamangalam":     {X: 38, Y: -14},
		"Thiruthuraipoondi": {X: 58, Y: -32},
		"Papanasam":         {X: 24, Y: 12},
		"Kumbakonam":        {X: 34, Y: 18},
		"Swamimalai":        {X: 30, Y: 20},
		"Aduthurai":         {X: 42, Y: 21},
		"Thiruvidaimarudur": {X: 39, Y: 17},
		"Thirukarukkavur":   {X: 30, Y: 5},
		"Palayur":           {X: 38, Y: -3},
		"Kudavasal":         {X: 46, Y: -6},
		"Mallakalyanam":     {X: 52, Y: -9},
		"Thiruvarur":        {X: 58, Y: -13},
		"Nagapattinam":      {X: 78, Y: -16},
		"Sirkazhi":          {X: 74, Y: 16},
		"Vedaranyam":        {X: 66, Y: -48},
	}
}

// ThanjavurMap builds the undirected district Map with its locations
// attached. The dataset is known-good, so construction cannot fail.
func ThanjavurMap() *Map {
	m, err := NewMap(ThanjavurLinks(), WithLocations(ThanjavurLocations()))
	if err != nil {
		panic("route: canned Thanjavur dataset failed to build: " + err.Error())
	}

	return m
}
