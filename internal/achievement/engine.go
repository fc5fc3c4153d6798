package achievement

import (
	"github.com/stellarisdev/CosmicDefender/internal/player"
)

// speedRunWindow caps the session duration for score_time rules, in seconds.
const speedRunWindow = 180

// EvalInput is what a rule is judged against: the player's refreshed
// cumulative profile plus the session that just finished.
type EvalInput struct {
	Profile *player.Player
	Session *SessionResult
}

type Evaluator func(rule *Achievement, in *EvalInput) bool

// Engine maps requirement types to evaluators. Rules with an unregistered
// requirement type never unlock.
type Engine struct {
	evaluators map[string]Evaluator
}

func NewEngine() *Engine {
	e := &Engine{evaluators: map[string]Evaluator{}}

	e.Register(ReqEnemiesDestroyed, func(rule *Achievement, in *EvalInput) bool {
		return in.Profile.TotalEnemiesDestroyed >= rule.RequirementValue
	})
	e.Register(ReqAsteroidsDestroyed, func(rule *Achievement, in *EvalInput) bool {
		return in.Profile.TotalAsteroidsDestroyed >= rule.RequirementValue
	})
	e.Register(ReqPowerupsCollected, func(rule *Achievement, in *EvalInput) bool {
		return in.Profile.TotalPowerupsCollected >= rule.RequirementValue
	})
	e.Register(ReqScore, func(rule *Achievement, in *EvalInput) bool {
		return in.Profile.BestScore >= rule.RequirementValue
	})
	e.Register(ReqGameDuration, func(rule *Achievement, in *EvalInput) bool {
		return in.Session.GameDuration >= rule.RequirementValue
	})
	e.Register(ReqWave, func(rule *Achievement, in *EvalInput) bool {
		return in.Session.MaxWave >= rule.RequirementValue
	})
	e.Register(ReqScoreTime, func(rule *Achievement, in *EvalInput) bool {
		return in.Session.FinalScore >= rule.RequirementValue &&
			in.Session.GameDuration <= speedRunWindow
	})
	// Placeholder: damage taken is not tracked yet, so any scoring session
	// passes. Replace via Register once the client reports damage.
	e.Register(ReqNoDamage, func(rule *Achievement, in *EvalInput) bool {
		return in.Session.FinalScore > 0
	})

	return e
}

// Register installs or replaces the evaluator for a requirement type.
func (e *Engine) Register(requirementType string, fn Evaluator) {
	e.evaluators[requirementType] = fn
}

// Unlocks returns the catalog rules not yet held by the player whose
// condition holds for this input.
func (e *Engine) Unlocks(rules []Achievement, alreadyUnlocked map[string]bool, in *EvalInput) []Achievement {
	unlocked := []Achievement{}
	for _, rule := range rules {
		if alreadyUnlocked[rule.ID] {
			continue
		}
		eval, ok := e.evaluators[rule.RequirementType]
		if !ok {
			continue
		}
		if eval(&rule, in) {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked
}
