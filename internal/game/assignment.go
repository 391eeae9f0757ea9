// Package game holds the pure rules of the assassin game: target
// assignment, claim consensus arithmetic and prize distribution. No
// function here touches storage or clocks; randomness is injected.
package game

import (
	"fmt"
	"math/rand"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type Assignment struct {
	PlayerID   uuid.UUID
	TargetID   uuid.UUID
	TargetName string
	Object     string
	Place      string
}

// GenerateAssignments builds one assignment per player. Targets follow
// a random permutation of the roster with each player hunting the next
// one (wrapping around), which for n >= 2 is a single cycle with no
// fixed point. Objects and places are shuffled independently and dealt
// round-robin, so pools smaller than the roster wrap instead of
// erroring.
func GenerateAssignments(rng *rand.Rand, players []domain.Player, objects, places []string) ([]Assignment, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, have %d", domain.ErrInsufficientPlayers, len(players))
	}
	if len(objects) == 0 || len(places) == 0 {
		return nil, fmt.Errorf("%w: objects=%d places=%d", domain.ErrEmptyAssignmentPool, len(objects), len(places))
	}

	shuffled := make([]domain.Player, len(players))
	copy(shuffled, players)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	shuffledObjects := shuffleStrings(rng, objects)
	shuffledPlaces := shuffleStrings(rng, places)

	assignments := make([]Assignment, len(shuffled))
	for i, p := range shuffled {
		target := shuffled[(i+1)%len(shuffled)]
		assignments[i] = Assignment{
			PlayerID:   p.ID,
			TargetID:   target.ID,
			TargetName: target.Name,
			Object:     shuffledObjects[i%len(shuffledObjects)],
			Place:      shuffledPlaces[i%len(shuffledPlaces)],
		}
	}
	return assignments, nil
}

func shuffleStrings(rng *rand.Rand, in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Reroll picks a replacement from the pool for a rejected object or
// place, avoiding the current value when the pool offers alternatives.
func Reroll(rng *rand.Rand, pool []string, current string) (string, error) {
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: nothing to reroll from", domain.ErrEmptyAssignmentPool)
	}
	candidates := make([]string, 0, len(pool))
	for _, v := range pool {
		if v != current {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return current, nil
	}
	return candidates[rng.Intn(len(candidates))], nil
}
