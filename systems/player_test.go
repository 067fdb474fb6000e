package systems

import (
	"testing"

	"github.com/automoto/flappy-cat/assets"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func TestVelocityStaysClamped(t *testing.T) {
	e, _, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	body := components.Body.Get(player)
	data := components.Player.Get(player)

	for vy := -200.0; vy <= 200; vy += 3.7 {
		for _, jump := range []bool{false, true} {
			body.Velocity = math.Vec2{X: 5, Y: vy}
			data.PendingJump = jump

			FixedUpdatePlayer(e)

			got := body.Velocity.Y
			if got < cfg.Player.MinVelocity || got > cfg.Player.MaxVelocity {
				t.Fatalf("vy %v jump %v: velocity %v escaped the clamp", vy, jump, got)
			}
			if body.Velocity.X != 0 {
				t.Fatalf("horizontal velocity %v, want 0", body.Velocity.X)
			}
		}
	}
}

func TestJumpFromFastFall(t *testing.T) {
	e, _, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	body := components.Body.Get(player)

	body.Velocity.Y = -50
	components.Player.Get(player).PendingJump = true
	FixedUpdatePlayer(e)

	if got := body.Velocity.Y; got < cfg.Player.JumpVelocity/2 {
		t.Errorf("velocity after jump = %v, want at least %v", got, cfg.Player.JumpVelocity/2)
	}
	if components.Player.Get(player).PendingJump {
		t.Error("jump should be consumed")
	}
	if !components.Animator.Get(player).Triggers[cfg.ParamFlap] {
		t.Error("jump should fire the flap trigger")
	}
	if n := countSound(e, cfg.SoundJump); n != 1 {
		t.Errorf("jump sound queued %d times", n)
	}
}

func TestFirstJumpStartsGame(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	input := newFakeInput()
	updateInput := NewUpdateInput(input)
	updatePlayer := NewUpdatePlayer(game)

	tick(e, 1.0/60, updateInput, updatePlayer)
	if game.State() != cfg.NotStarted {
		t.Fatal("no input should not start the game")
	}

	input.pressed[cfg.ActionJump] = true
	tick(e, 1.0/60, updateInput, updatePlayer)
	if game.State() != cfg.Running {
		t.Fatalf("state = %v, want running", game.State())
	}
	data := components.Player.Get(player)
	if !data.PendingJump {
		t.Fatal("jump should be armed for the next physics tick")
	}

	FixedUpdatePlayer(e)
	tick(e, 1.0/60, updateInput, updatePlayer)
	if data.PendingJump {
		t.Error("holding jump must not arm another jump")
	}
}

func TestTiltFollowsVelocity(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()
	updatePlayer := NewUpdatePlayer(game)
	updateInput := NewUpdateInput(newFakeInput())

	components.Body.Get(player).Velocity.Y = 100
	for i := 0; i < 120; i++ {
		tick(e, 1.0/60, updateInput, updatePlayer)
	}
	if got := components.Transform.Get(player).Rotation; got != cfg.Player.MaxTiltDegrees {
		t.Errorf("rotation = %v, want %v", got, cfg.Player.MaxTiltDegrees)
	}
}

func TestKillPlayerLatches(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()

	if !KillPlayer(e, player, game) {
		t.Fatal("first kill should report true")
	}
	if KillPlayer(e, player, game) {
		t.Error("second kill should report false")
	}

	if !components.Player.Get(player).IsDead {
		t.Error("player should be dead")
	}
	if !components.Body.Get(player).FreezeRotation {
		t.Error("death should freeze rotation")
	}
	if !components.Animator.Get(player).Bool(cfg.ParamIsDead) {
		t.Error("death should set the animator flag")
	}
	if n := countSound(e, cfg.SoundDeath); n != 1 {
		t.Errorf("death sound queued %d times, want 1", n)
	}
	if game.State() != cfg.GameOverState {
		t.Errorf("state = %v, want game over", game.State())
	}

	// Dead players ignore jumps
	components.Player.Get(player).PendingJump = true
	before := components.Body.Get(player).Velocity.Y
	FixedUpdatePlayer(e)
	if components.Body.Get(player).Velocity.Y != before {
		t.Error("a dead player must not jump")
	}
}

func TestPipeContactKillsPlayer(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()
	contacts := NewUpdatePlayerContacts(game)

	// Gap far from the player, the lower pipe covers it
	factory.CreatePipes(e, 0, components.ObstacleData{OriginY: 5, Speed: 1})
	contacts(e)

	if !components.Player.Get(player).IsDead {
		t.Fatal("overlapping a pipe should kill")
	}
	if game.State() != cfg.GameOverState {
		t.Errorf("state = %v", game.State())
	}
}

func TestGapIsSafe(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()

	factory.CreatePipes(e, 0, components.ObstacleData{OriginY: 0, Speed: 1})
	factory.CreatePipes(e, 3, components.ObstacleData{OriginY: 0, Speed: 1})
	NewUpdatePlayerContacts(game)(e)

	if components.Player.Get(player).IsDead {
		t.Error("flying through the gap should be safe")
	}
}

func TestGroundKillsPlayer(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()
	factory.CreateHazard(e, assets.Hazard{
		Name:   "Ground",
		Center: math.Vec2{X: 0, Y: cfg.Layout.GroundY - cfg.Layout.GroundH/2},
		Size:   math.Vec2{X: 12, Y: cfg.Layout.GroundH},
	})
	fixed := NewFixedUpdate(UpdateGravity, FixedUpdatePlayer, UpdateBodies, SyncColliders, NewUpdatePlayerContacts(game))

	for i := 0; i < 300 && !components.Player.Get(player).IsDead; i++ {
		tick(e, 1.0/60, fixed)
	}
	if !components.Player.Get(player).IsDead {
		t.Fatal("falling onto the ground should kill")
	}
	if y := components.Transform.Get(player).Position.Y; y < cfg.World.FloorY {
		t.Errorf("player sank below the floor: %v", y)
	}
}

func TestInvincibleIgnoresContacts(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()
	factory.CreatePipes(e, 0, components.ObstacleData{OriginY: 5, Speed: 1})

	cfg.Debug.Invincible = true
	defer func() { cfg.Debug.Invincible = false }()

	NewUpdatePlayerContacts(game)(e)
	if components.Player.Get(player).IsDead {
		t.Error("invincible player died")
	}
}

func TestAnimatorStates(t *testing.T) {
	e, game, _ := newTestWorld(t)
	player := newTestPlayer(t, e, 0, 0)
	game.StartGame()
	animator := components.Animator.Get(player)

	tick(e, 1.0/60, UpdateAnimators)
	if animator.CurrentState != cfg.Idle {
		t.Fatalf("initial state = %v, want idle", animator.CurrentState)
	}

	animator.SetTrigger(cfg.ParamFlap)
	tick(e, 1.0/60, UpdateAnimators)
	if animator.CurrentState != cfg.Flap {
		t.Fatalf("state after flap = %v", animator.CurrentState)
	}

	for i := 0; i < 30; i++ {
		tick(e, 1.0/60, UpdateAnimators)
	}
	if animator.CurrentState != cfg.Idle {
		t.Errorf("flap should settle back to idle, got %v", animator.CurrentState)
	}

	animator.SetBool(cfg.ParamIsDead, true)
	animator.SetTrigger(cfg.ParamFlap)
	tick(e, 1.0/60, UpdateAnimators)
	if animator.CurrentState != cfg.Dead {
		t.Errorf("state = %v, want dead", animator.CurrentState)
	}
}
