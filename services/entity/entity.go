// Package entity defines what the world needs from things that move across it
// and the events they raise to change terrain.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/tileworld/services/tile"
)

//go:generate mockgen -source=entity.go -destination=../../internal/testmocks/mock_entity.go -package=testmocks

// Entity is the capability set the world drives each frame. The world moves
// the entity across terrain before calling Update. Update may only change the
// position to teleport, as the player does on respawn; the world keeps that
// position and does not check it against terrain.
type Entity interface {
	Position() mgl64.Vec2
	Velocity() mgl64.Vec2
	SetPosition(pos mgl64.Vec2)
	Update(interaction tile.Interaction, action tile.Action, dt float64)
	// WorldEvent pops the oldest pending event, or an EventNone event.
	WorldEvent() WorldEvent
}

// Direction is a cardinal facing.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// DirectionFromVec picks a facing for a velocity. Horizontal wins on
// diagonals. ok is false for the zero vector.
func DirectionFromVec(v mgl64.Vec2) (d Direction, ok bool) {
	x, y := v.X(), v.Y()
	switch {
	case x > 0:
		return Right, true
	case x < 0:
		return Left, true
	case y > 0:
		return Down, true
	case y < 0:
		return Up, true
	default:
		return Right, false
	}
}

// Vec returns the unit vector of the facing; y grows downwards.
func (d Direction) Vec() mgl64.Vec2 {
	switch d {
	case Up:
		return mgl64.Vec2{0, -1}
	case Down:
		return mgl64.Vec2{0, 1}
	case Left:
		return mgl64.Vec2{-1, 0}
	default:
		return mgl64.Vec2{1, 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// EventKind tags a WorldEvent.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventDestroy
)

// WorldEvent is a one-shot terrain request from an entity.
type WorldEvent struct {
	Kind      EventKind
	Direction Direction
}

// Destroy requests that destroyable terrain around the entity be cleared.
func Destroy(d Direction) WorldEvent {
	return WorldEvent{Kind: EventDestroy, Direction: d}
}
