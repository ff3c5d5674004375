package engine

import "math"

// advance moves a point one velocity step and reflects it off the side walls.
// Live motion and the trajectory predictor both go through here.
func (e *Engine) advance(pos, vel Vec) (Vec, Vec, bool) {
	pos = pos.Add(vel)
	bounced := false
	switch {
	case pos.X <= e.geo.MinX:
		if vel.X < 0 {
			vel.X = -vel.X
			bounced = true
		}
		pos.X = e.geo.MinX
	case pos.X >= e.geo.MaxX:
		if vel.X > 0 {
			vel.X = -vel.X
			bounced = true
		}
		pos.X = e.geo.MaxX
	}
	return pos, vel, bounced
}

// hitsCeiling reports whether a center has reached the ceiling.
func (e *Engine) hitsCeiling(pos Vec) bool {
	return pos.Y <= e.cfg.ceilingY()
}

// firstCollision returns the lowest-ID static bubble overlapping pos.
func (e *Engine) firstCollision(b *Board, pos Vec) (Bubble, bool) {
	var hit Bubble
	found := false
	b.each(func(x Bubble) bool {
		if e.geo.Collide(pos, x.Pos) {
			hit, found = x, true
			return false
		}
		return true
	})
	return hit, found
}

// step moves the projectile once and resolves whatever it touches.
func (e *Engine) step(s *State, res *TickResult) error {
	p := s.Projectile
	p.Pos, p.Vel, res.Bounced = e.advance(p.Pos, p.Vel)
	s.Projectile = p
	res.Moved = true

	if e.hitsCeiling(p.Pos) {
		return e.attach(s, res)
	}
	if _, hit := e.firstCollision(s.Board, p.Pos); hit {
		return e.attach(s, res)
	}
	if p.Pos.Y > e.cfg.Height || math.IsNaN(p.Pos.Y) {
		s.Projectile = Bubble{}
		s.InFlight = false
		res.Discarded = true
		e.advanceQueue(s)
	}
	return nil
}

// advanceQueue shifts the preview into the launcher and draws a new preview.
func (e *Engine) advanceQueue(s *State) {
	s.Current = s.Next
	s.Next = QueueBubble{Color: e.nextColor(s)}
}
