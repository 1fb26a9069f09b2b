// Package sim wires the external JSON request/response shapes in
// internal/models to the battle core: building teams from a
// models.FightRequest, running them to completion, and rendering a
// models.FightResponse. This is the "caller wrapping the driver" spec.md
// §6 describes, kept separate from internal/battle so the core stays a
// pure library.
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/config"
	"github.com/sapbattle/core/internal/errs"
	"github.com/sapbattle/core/internal/models"
	"github.com/sapbattle/core/internal/stats"
)

// Runner executes fight requests against a shared catalog.
type Runner struct {
	Catalog battle.Catalog
	Log     logrus.FieldLogger
	Config  config.Battle
}

// NewRunner constructs a Runner, defaulting Log to the standard logger
// and Config to config.Default() when unset.
func NewRunner(catalog battle.Catalog, log logrus.FieldLogger, cfg config.Battle) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.MaxTeamSize == 0 {
		cfg = config.Default()
	}
	return &Runner{Catalog: catalog, Log: log, Config: cfg}
}

func (r *Runner) buildTeam(req models.TeamRequest) (*battle.Team, error) {
	pets := make([]*battle.Pet, 0, len(req.Pets))
	for _, slot := range req.Pets {
		var p *battle.Pet
		var err error
		if r.Catalog != nil {
			p, err = r.Catalog.SummonPet(slot.Name, maxInt(slot.Level, 1))
			if err != nil {
				return nil, err
			}
		} else {
			p = battle.NewPet(slot.Name, stats.New(slot.Attack, slot.Health), 0, maxInt(slot.Level, 1))
		}
		if slot.Attack != 0 || slot.Health != 0 {
			p.Stats = stats.New(slot.Attack, slot.Health)
		}
		if slot.Item != "" && r.Catalog != nil {
			food, err := r.Catalog.Food(slot.Item)
			if err != nil {
				r.Log.WithError(err).WithField("food", slot.Item).Warn("item lookup failed, continuing without it")
			} else {
				p.Item = food
			}
		}
		pets = append(pets, p)
	}
	team, err := battle.NewTeam(req.Name, pets, r.Config.MaxTeamSize)
	if err != nil {
		return nil, err
	}
	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	} else if r.Config.Seed != nil {
		seed = *r.Config.Seed
	}
	team.SetSeed(seed)
	return team, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Run builds both teams from req, fights them to completion (bounded by
// req.MaxPhases or the Runner's configured default), and renders the
// result.
func (r *Runner) Run(req models.FightRequest) (models.FightResponse, error) {
	teamA, err := r.buildTeam(req.TeamA)
	if err != nil {
		return models.FightResponse{}, errs.Wrap(errs.InvalidTeamAction, req.TeamA.Name, "team construction failed", err)
	}
	teamB, err := r.buildTeam(req.TeamB)
	if err != nil {
		return models.FightResponse{}, errs.Wrap(errs.InvalidTeamAction, req.TeamB.Name, "team construction failed", err)
	}

	maxPhases := req.MaxPhases
	if maxPhases <= 0 {
		maxPhases = r.Config.MaxPhases
	}

	applier := battle.NewApplier(r.Catalog, r.Log)
	engine := battle.NewEngine(applier)
	driver := battle.NewDriver(engine)

	result := driver.FightToCompletion(teamA, teamB, maxPhases)

	resp := models.FightResponse{Result: result.String(), Phases: teamA.CurrPhase}
	switch result {
	case battle.ResultWin:
		resp.Winner = teamA.Name
	case battle.ResultLoss:
		resp.Winner = teamB.Name
	}
	resp.TeamA = renderPets(teamA.All())
	resp.TeamB = renderPets(teamB.All())
	resp.Fainted.TeamA = renderPets(teamA.Fainted)
	resp.Fainted.TeamB = renderPets(teamB.Fainted)
	return resp, nil
}

func renderPets(pets []*battle.Pet) []models.PetState {
	out := make([]models.PetState, 0, len(pets))
	for _, p := range pets {
		st := models.PetState{Name: p.Name, Attack: p.Stats.Attack, Health: p.Stats.Health, Level: p.Level}
		if p.Item != nil {
			st.Item = p.Item.Name
		}
		out = append(out, st)
	}
	return out
}
