// Command battlesvc is the HTTP wrapper spec.md §6 permits around the
// battle core: a JSON POST endpoint that runs one simulation to
// completion, and a /ws/replay websocket endpoint that upgrades the
// connection and sends a single hello frame; it streams no trigger log.
// Adapted from the
// teacher's cmd/api and cmd/game entrypoints (getenv-driven config,
// gorilla/mux routing, gorilla/websocket streaming).
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/catalog"
	"github.com/sapbattle/core/internal/config"
	"github.com/sapbattle/core/internal/matchstats"
	"github.com/sapbattle/core/internal/models"
	"github.com/sapbattle/core/internal/sim"
)

var log = logrus.StandardLogger()

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.FromEnv()
	cat := buildCatalog()
	runner := sim.NewRunner(cat, log, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/api/fight", handleFight(runner)).Methods(http.MethodPost)
	router.HandleFunc("/api/leaderboard/max-attack", handleMaxAttack).Methods(http.MethodGet)
	router.HandleFunc("/api/healthz", handleHealthz).Methods(http.MethodGet)
	router.HandleFunc("/ws/replay", handleReplay)

	addr := config.ListenAddr()
	log.WithField("addr", addr).Info("battlesvc listening")
	log.Fatal(http.ListenAndServe(addr, router))
}

// buildCatalog selects an HTTP-backed catalog when DATA_API_BASE is set,
// falling back to the embedded seed catalog otherwise — mirroring the
// teacher's DATA_API_BASE fallback in cmd/game's getenv chain.
func buildCatalog() battle.Catalog {
	base := os.Getenv("DATA_API_BASE")
	if base == "" {
		return catalog.NewMemory()
	}
	ttl := 5 * time.Minute
	if raw := os.Getenv("DATA_API_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}
	log.WithField("base", base).Info("using HTTP-backed catalog")
	return catalog.NewHTTPCatalog(base, ttl, catalog.DefaultLowering(catalog.NewMemory()))
}

func handleFight(runner *sim.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		resp, err := runner.Run(req)
		if err != nil {
			log.WithError(err).Warn("fight request failed")
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		if resp.Winner != "" {
			matchstats.SaveUserStats(resp.Winner, map[string]interface{}{"last_result": resp.Result, "phases": resp.Phases})
			recordWinningAttack(req, resp)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// recordWinningAttack feeds the leaderboard's daily max-attack record from
// the winning side's strongest surviving pet, with the losing side's
// fainted count standing in for "wounds" (spec.md §6 leaves attack-by-
// attack damage logging to a caller; this is the coarsest real signal the
// wire-level FightResponse carries).
func recordWinningAttack(req models.FightRequest, resp models.FightResponse) {
	survivors, fainted := resp.TeamA, resp.Fainted.TeamB
	if resp.Winner == req.TeamB.Name {
		survivors, fainted = resp.TeamB, resp.Fainted.TeamA
	}
	var top *models.PetState
	for i := range survivors {
		if top == nil || survivors[i].Attack > top.Attack {
			top = &survivors[i]
		}
	}
	if top == nil {
		return
	}
	matchstats.SaveGlobalMaxAttack(map[string]interface{}{
		"player": resp.Winner,
		"pet":    top.Name,
		"damage": top.Attack,
		"wounds": len(fainted),
	})
}

func handleMaxAttack(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, matchstats.GetGlobalMaxAttackToday())
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "today": matchstats.Today()})
}

// handleReplay upgrades to a websocket and streams a placeholder hello
// frame; a full trigger-by-trigger replay requires the driver to retain
// a per-battle LogEntry timeline (battle.Team.History), left for a
// caller to pull and forward since the core itself never touches the
// network.
func handleReplay(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	_ = conn.WriteJSON(map[string]string{"type": "hello", "at": time.Now().UTC().Format(time.RFC3339)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}
