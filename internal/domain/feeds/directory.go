package feeds

import (
	"strconv"
	"strings"
)

const playerKeyPrefix = "ID"

// PlayerKey builds the "ID<id>" key upstream documents index players by.
func PlayerKey(id int64) string {
	return playerKeyPrefix + strconv.FormatInt(id, 10)
}

// ParsePlayerKey extracts the numeric id from an "ID<id>" key.
func ParsePlayerKey(key string) (int64, bool) {
	if !strings.HasPrefix(key, playerKeyPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(key, playerKeyPrefix), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Directory is the live feed's player table indexed by player id.
type Directory map[int64]Person

// NewDirectory indexes the live feed player map. Malformed keys are skipped.
func NewDirectory(players map[string]Person) Directory {
	dir := make(Directory, len(players))
	for key, p := range players {
		if id, ok := ParsePlayerKey(key); ok {
			dir[id] = p
		}
	}
	return dir
}

// Lookup returns the player for id. The zero id never resolves.
func (d Directory) Lookup(id int64) (Person, bool) {
	if id == 0 || d == nil {
		return Person{}, false
	}
	p, ok := d[id]
	return p, ok
}

// BoxDirectory is one boxscore team's player table indexed by player id.
type BoxDirectory map[int64]BoxPlayer

// NewBoxDirectory indexes a boxscore team's player map. Malformed keys are skipped.
func NewBoxDirectory(players map[string]BoxPlayer) BoxDirectory {
	dir := make(BoxDirectory, len(players))
	for key, p := range players {
		if id, ok := ParsePlayerKey(key); ok {
			dir[id] = p
		}
	}
	return dir
}

// Lookup returns the boxscore record for id. The zero id never resolves.
func (d BoxDirectory) Lookup(id int64) (BoxPlayer, bool) {
	if id == 0 || d == nil {
		return BoxPlayer{}, false
	}
	p, ok := d[id]
	return p, ok
}
