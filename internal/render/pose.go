package render

import "github.com/vovakirdan/entropy/internal/physics"

// Pose is the animation state of the player.
type Pose struct {
	Facing physics.Facing
	Moving bool
	Frame  int // Walk frame; ignored when standing
}

// PoseOf returns the pose for an actor at the given walk frame.
func PoseOf(a physics.Actor, frame int) Pose {
	p := Pose{Facing: a.Facing, Moving: a.Moving}
	if a.Moving {
		p.Frame = frame % 2
	}
	return p
}

// Sprite is a small glyph picture, one string per row.
type Sprite [2]string

var sprites = map[Pose]Sprite{
	{Facing: physics.FacingRight}:                          {" @>", " ||"},
	{Facing: physics.FacingLeft}:                           {"<@ ", "|| "},
	{Facing: physics.FacingRight, Moving: true, Frame: 0}: {" @>", " /|"},
	{Facing: physics.FacingRight, Moving: true, Frame: 1}: {" @>", " |\\"},
	{Facing: physics.FacingLeft, Moving: true, Frame: 0}:  {"<@ ", "|\\ "},
	{Facing: physics.FacingLeft, Moving: true, Frame: 1}:  {"<@ ", "/| "},
}

// SpriteFor resolves a pose to its sprite. Every reachable pose has an
// entry; anything else falls back to standing right.
func SpriteFor(p Pose) Sprite {
	if s, ok := sprites[p]; ok {
		return s
	}
	return sprites[Pose{}]
}
