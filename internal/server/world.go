package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"isle/internal/core"
	"isle/internal/terrain"
	"isle/internal/world"
)

// GET /api/world takes the island query and places the player and sheep.
// Spawns are drawn from a stream seeded with the island seed, so the same
// query always yields the same world.
func getWorld(w http.ResponseWriter, r *http.Request) {
	st, err := worldFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, worldStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, st)
}

type moveRequest struct {
	Query     map[string]string `json:"query"`
	Position  core.Point        `json:"position"`
	Direction string            `json:"direction"`
}

type moveResponse struct {
	Position core.Point `json:"position"`
	Moved    bool       `json:"moved"`
	Tile     string     `json:"tile"`
}

// POST /api/world/move steps a player standing at position on the island
// described by query.
func moveInWorld(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	dir, err := terrain.ParseDirection(req.Direction)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := url.Values{}
	for k, v := range req.Query {
		q.Set(k, v)
	}
	st, err := worldFromQuery(q)
	if err != nil {
		respondError(w, worldStatus(err), err.Error())
		return
	}
	if !world.CanEnter(st.Island, st.Player.Walker, req.Position.X, req.Position.Y) {
		respondError(w, http.StatusBadRequest, "player cannot stand at that position")
		return
	}
	st.Player.Pos = req.Position
	moved := st.MovePlayer(dir)
	respondJSON(w, http.StatusOK, moveResponse{
		Position: st.Player.Pos,
		Moved:    moved,
		Tile:     st.Island.At(st.Player.Pos.X, st.Player.Pos.Y).String(),
	})
}

func worldFromQuery(q url.Values) (*world.State, error) {
	cfg, err := configFromQuery(q)
	if err != nil {
		return nil, err
	}
	is, _, err := generate(cfg)
	if err != nil {
		return nil, err
	}
	return world.New(is, core.NewRNG(cfg.Seed))
}

func worldStatus(err error) int {
	if errors.Is(err, world.ErrNoSpawn) {
		return http.StatusUnprocessableEntity
	}
	return statusFor(err)
}
