package world

import (
	"encoding/json"
	"errors"
	"fmt"

	"isle/internal/core"
	"isle/internal/terrain"
)

// ErrNoSpawn reports that the island has no tile of the kind an entity
// needs to spawn on.
var ErrNoSpawn = errors.New("no spawn tile")

// EntityKind distinguishes the creatures placed on an island.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindSheep
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindSheep:
		return "sheep"
	}
	return fmt.Sprintf("EntityKind(%d)", uint8(k))
}

// Entity is a creature standing on the island.
type Entity struct {
	Kind   EntityKind
	Pos    core.Point
	Walker Walker
}

type entityJSON struct {
	Kind  string             `json:"kind"`
	X     int                `json:"x"`
	Y     int                `json:"y"`
	Walks []terrain.TileKind `json:"walks"`
}

// MarshalJSON encodes the entity with its position and walkable terrain.
func (e Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(entityJSON{
		Kind:  e.Kind.String(),
		X:     e.Pos.X,
		Y:     e.Pos.Y,
		Walks: e.Walker.Kinds(),
	})
}

// State is everything placed on one island.
type State struct {
	Island   *terrain.Island `json:"island"`
	Player   Entity          `json:"player"`
	Entities []Entity        `json:"entities"`
}

// SheepCount returns how many sheep an island with the given number of
// grass tiles supports.
func SheepCount(grass int) int {
	switch {
	case grass <= 0:
		return 0
	case grass < 10:
		return 3
	case grass < 20:
		return 4
	case grass < 25:
		return 5
	default:
		return 7
	}
}

// SpawnOn picks a uniformly random cell of the given kind. ok is false
// when the island has none.
func SpawnOn(is *terrain.Island, rng *core.RNG, kind terrain.TileKind) (core.Point, bool) {
	cells := is.Find(kind)
	if len(cells) == 0 {
		return core.Point{}, false
	}
	return cells[rng.IntN(len(cells))], true
}

// New places the player on a sand tile and a flock of sheep on grass.
// Sheep are placed independently and may share a tile.
func New(is *terrain.Island, rng *core.RNG) (*State, error) {
	if is == nil {
		return nil, fmt.Errorf("%w: no island", ErrNoSpawn)
	}
	pos, ok := SpawnOn(is, rng, terrain.Sand)
	if !ok {
		return nil, fmt.Errorf("%w: player needs %v", ErrNoSpawn, terrain.Sand)
	}
	st := &State{
		Island: is,
		Player: Entity{Kind: KindPlayer, Pos: pos, Walker: PlayerTerrain()},
	}

	grass := is.Find(terrain.Grass)
	n := SheepCount(len(grass))
	for i := 0; i < n; i++ {
		st.Entities = append(st.Entities, Entity{
			Kind:   KindSheep,
			Pos:    grass[rng.IntN(len(grass))],
			Walker: SheepTerrain(),
		})
	}
	return st, nil
}

// Move steps e one cell in dir if the destination is enterable and reports
// whether it moved.
func (s *State) Move(e *Entity, dir terrain.Direction) bool {
	next := Step(e.Pos, dir)
	if !CanEnter(s.Island, e.Walker, next.X, next.Y) {
		return false
	}
	e.Pos = next
	return true
}

// MovePlayer moves the player one cell in dir.
func (s *State) MovePlayer(dir terrain.Direction) bool {
	return s.Move(&s.Player, dir)
}

// Occupants returns the entities standing on (x, y), player first.
func (s *State) Occupants(x, y int) []Entity {
	var out []Entity
	p := core.Point{X: x, Y: y}
	if s.Player.Pos == p {
		out = append(out, s.Player)
	}
	for _, e := range s.Entities {
		if e.Pos == p {
			out = append(out, e)
		}
	}
	return out
}
