package redis

import "fmt"

// Key prefix for all roster data
const keyPrefix = "roster"

// playerKey returns the Redis key for a Player
func playerKey(id int64) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all player ids
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// idSequenceKey returns the Redis key for the id sequence counter
func idSequenceKey() string {
	return fmt.Sprintf("%s:seq:player_id", keyPrefix)
}
