package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"isle/internal/terrain"
)

// Request limits. Generation work grows with volcanoes × eruptions × walk
// steps, so each factor is bounded along with the grid size.
const (
	MaxDimension  = 1024
	MaxVolcanoes  = 64
	MaxEruptions  = 256
	MaxWalkSteps  = 2000
	MinPowerDecay = 0.01
)

type islandResponse struct {
	Seed   int64           `json:"seed"`
	Params terrain.Params  `json:"params"`
	Report terrain.Report  `json:"report"`
	Island *terrain.Island `json:"island"`
}

func listPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"presets": terrain.PresetNames()})
}

func listParams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, terrain.DefaultConfig().Parameters())
}

// GET /api/island?w=&h=&seed=&preset=&<param>=
func getIsland(w http.ResponseWriter, r *http.Request) {
	cfg, err := configFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	is, rep, err := generate(cfg)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, islandResponse{
		Seed:   cfg.Seed,
		Params: cfg.Params,
		Report: rep,
		Island: is,
	})
}

// GET /api/island/ascii takes the same query as /api/island.
func getIslandASCII(w http.ResponseWriter, r *http.Request) {
	cfg, err := configFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	is, _, err := generate(cfg)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, is.ASCII())
}

// configFromQuery builds a configuration from the defaults, then the preset
// named by "preset", then every other query key as a parameter override.
func configFromQuery(q url.Values) (terrain.Config, error) {
	cfg := terrain.DefaultConfig()
	if name := q.Get("preset"); name != "" {
		if err := terrain.ApplyPreset(name, &cfg); err != nil {
			return cfg, err
		}
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		if k != "preset" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := cfg.Set(k, q.Get(k)); err != nil {
			return cfg, err
		}
	}
	if err := checkLimits(cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func checkLimits(cfg terrain.Config) error {
	p := cfg.Params
	switch {
	case cfg.Width > MaxDimension || cfg.Height > MaxDimension:
		return fmt.Errorf("%w: %dx%d exceeds %d", terrain.ErrInvalidDimensions, cfg.Width, cfg.Height, MaxDimension)
	case p.VolcanoCountMin > MaxVolcanoes || p.VolcanoCountMax > MaxVolcanoes:
		return fmt.Errorf("%w: volcano count exceeds %d", terrain.ErrInvalidParams, MaxVolcanoes)
	case p.EruptionsMin > MaxEruptions || p.EruptionsMax > MaxEruptions:
		return fmt.Errorf("%w: eruptions exceed %d", terrain.ErrInvalidParams, MaxEruptions)
	case p.MaxWalkSteps > MaxWalkSteps:
		return fmt.Errorf("%w: max_walk_steps exceeds %d", terrain.ErrInvalidParams, MaxWalkSteps)
	case p.PowerDecay < MinPowerDecay:
		return fmt.Errorf("%w: power_decay below %g", terrain.ErrInvalidParams, MinPowerDecay)
	}
	return nil
}

func generate(cfg terrain.Config) (*terrain.Island, terrain.Report, error) {
	g, err := terrain.New(cfg)
	if err != nil {
		return nil, terrain.Report{}, err
	}
	return g.GenerateWithReport()
}

func statusFor(err error) int {
	if errors.Is(err, terrain.ErrInvalidDimensions) || errors.Is(err, terrain.ErrInvalidParams) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
