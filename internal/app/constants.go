package app

// MinPlayersToStartGame and MaxPlayersPerGame bound the table size a deck deal supports.
const (
	MinPlayersToStartGame = 2
	MaxPlayersPerGame     = 5
)
