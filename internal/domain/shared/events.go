package shared

import (
	"sync"
)

// Eventos estruturados emitidos pelo motor; a camada de UI assina e decide
// como apresentar (toast, modal, som).

type Event interface {
	EventName() string
}

type MilestoneReached struct {
	GoalId        string  `json:"goalId"`
	GoalName      string  `json:"goalName"`
	Percent       int     `json:"percent"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetAmount  float64 `json:"targetAmount"`
}

func (MilestoneReached) EventName() string { return "milestone_reached" }

type AchievementUnlocked struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

func (AchievementUnlocked) EventName() string { return "achievement_unlocked" }

type ChallengeCompleted struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Badge string `json:"badge"`
}

func (ChallengeCompleted) EventName() string { return "challenge_completed" }

type ChallengeFailed struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

func (ChallengeFailed) EventName() string { return "challenge_failed" }

type Emitter struct {
	mu          sync.RWMutex
	subscribers []func(Event)
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Subscribe(fn func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, fn)
}

// Emit entrega o evento de forma síncrona a todos os assinantes.
func (e *Emitter) Emit(event Event) {
	e.mu.RLock()
	subscribers := make([]func(Event), len(e.subscribers))
	copy(subscribers, e.subscribers)
	e.mu.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}
