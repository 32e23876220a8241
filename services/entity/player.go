package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/VoidMesh/tileworld/internal/logging"
	"github.com/VoidMesh/tileworld/services/tile"
)

const (
	AttackCooldown = 1.0 // seconds between digs
	AttackDuration = 0.3
	DyingDuration  = 1.0
)

// State is what the player is visibly doing this frame.
type State uint8

const (
	StateIdle State = iota
	StateWalk
	StateSwim
	StateCrawl
	StateAttack
	StateDying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateSwim:
		return "swim"
	case StateCrawl:
		return "crawl"
	case StateAttack:
		return "attack"
	case StateDying:
		return "dying"
	default:
		return "unknown"
	}
}

// Player is a controllable Entity. Stepping onto a Death tile kills it; once
// the dying state runs out it respawns at its spawn point.
type Player struct {
	ID   uuid.UUID
	Name string

	position  mgl64.Vec2
	velocity  mgl64.Vec2
	spawn     mgl64.Vec2
	direction Direction

	state      State
	stateTimer float64
	cooldown   float64
	deaths     int

	events []WorldEvent
}

var _ Entity = (*Player)(nil)

// NewPlayer creates a player standing at spawn.
func NewPlayer(name string, spawn mgl64.Vec2) *Player {
	return &Player{
		ID:        uuid.New(),
		Name:      name,
		position:  spawn,
		spawn:     spawn,
		direction: Right,
	}
}

func (p *Player) Position() mgl64.Vec2 { return p.position }

func (p *Player) Velocity() mgl64.Vec2 { return p.velocity }

func (p *Player) SetPosition(pos mgl64.Vec2) { p.position = pos }

func (p *Player) Direction() Direction { return p.direction }

func (p *Player) State() State { return p.state }

func (p *Player) Deaths() int { return p.deaths }

// Cooldown returns the seconds left before the player can dig again.
func (p *Player) Cooldown() float64 { return p.cooldown }

// SetVelocity steers the player. It is ignored while blocking states play.
func (p *Player) SetVelocity(v mgl64.Vec2) {
	if p.state == StateDying || p.state == StateAttack {
		return
	}
	p.velocity = v
	if d, ok := DirectionFromVec(v); ok {
		p.direction = d
	}
}

// TryAttack queues a Destroy event in the facing direction. It fails while
// on cooldown or dying.
func (p *Player) TryAttack() bool {
	if p.state == StateDying || p.state == StateAttack || p.cooldown > 0 {
		return false
	}
	p.events = append(p.events, Destroy(p.direction))
	p.velocity = mgl64.Vec2{}
	p.state = StateAttack
	p.stateTimer = AttackDuration
	p.cooldown = AttackCooldown
	return true
}

// Kill starts the dying state.
func (p *Player) Kill() {
	if p.state == StateDying {
		return
	}
	p.deaths++
	p.velocity = mgl64.Vec2{}
	p.state = StateDying
	p.stateTimer = DyingDuration

	logging.WithEntityID(p.ID.String()).Info("Player died",
		"name", p.Name, "x", p.position.X(), "y", p.position.Y(), "deaths", p.deaths)
}

// WorldEvent pops the oldest queued event.
func (p *Player) WorldEvent() WorldEvent {
	if len(p.events) == 0 {
		return WorldEvent{Kind: EventNone}
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

// Update advances timers and picks the state for the tile the player stood on.
func (p *Player) Update(interaction tile.Interaction, action tile.Action, dt float64) {
	p.cooldown = max(p.cooldown-dt, 0)

	switch p.state {
	case StateDying:
		p.stateTimer -= dt
		if p.stateTimer <= 0 {
			p.respawn()
		}
		return
	case StateAttack:
		p.stateTimer -= dt
		if p.stateTimer > 0 {
			return
		}
	}

	if action == tile.Death {
		p.Kill()
		return
	}

	switch {
	case interaction == tile.Swimmable:
		p.state = StateSwim
	case interaction == tile.Crawl:
		p.state = StateCrawl
	case p.velocity.Len() > 0:
		p.state = StateWalk
	default:
		p.state = StateIdle
	}
}

func (p *Player) respawn() {
	p.position = p.spawn
	p.velocity = mgl64.Vec2{}
	p.state = StateIdle
	p.stateTimer = 0

	logging.WithEntityID(p.ID.String()).Debug("Player respawned", "x", p.spawn.X(), "y", p.spawn.Y())
}
