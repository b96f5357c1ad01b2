// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted    Type = "game_started"
	GameEnded      Type = "game_ended"
	ShotFired      Type = "shot_fired"
	EnemySpawned   Type = "enemy_spawned"
	EnemyDestroyed Type = "enemy_destroyed"
	EnemyBreached  Type = "enemy_breached"
	ScoreChanged   Type = "score_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// EnemyEvent describes spawn, destruction, and breach of an enemy.
type EnemyEvent struct {
	BaseEvent
	Label string
}

// NewEnemyEvent creates a new enemy event
func NewEnemyEvent(eventType Type, source interface{}, label string) *EnemyEvent {
	return &EnemyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Label: label,
	}
}

// ScoreEvent carries the score after a change.
type ScoreEvent struct {
	BaseEvent
	Score int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(source interface{}, score int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: ScoreChanged,
			Source:    source,
		},
		Score: score,
	}
}

// GameEvent marks session lifecycle changes.
type GameEvent struct {
	BaseEvent
	FinalScore int
}

// NewGameEvent creates a new game lifecycle event
func NewGameEvent(eventType Type, source interface{}, finalScore int) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		FinalScore: finalScore,
	}
}
