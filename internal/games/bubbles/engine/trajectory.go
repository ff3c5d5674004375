package engine

// PredictTrajectory returns the path a bubble fired at aim would follow,
// starting at the launcher. Samples are TrajectoryStep apart and the path ends
// at the ceiling or at the first sample that collides with a static bubble.
// It returns nil when aim is not a valid upward shot.
//
// The prediction reads s without modifying it and may run concurrently with Tick.
func (e *Engine) PredictTrajectory(s State, aim Vec) []Vec {
	pts, _ := e.trace(s.Board, aim)
	return pts
}

// PredictLanding returns the cell a bubble fired at aim would occupy.
// It reports false for invalid aims and for paths that never terminate
// within TrajectoryLimit samples.
func (e *Engine) PredictLanding(s State, aim Vec) (Cell, bool) {
	pts, done := e.trace(s.Board, aim)
	if !done {
		return Cell{}, false
	}
	return e.resolveCell(s.Board, pts[len(pts)-1])
}

// trace walks the predicted path and reports whether it reached an obstacle.
func (e *Engine) trace(b *Board, aim Vec) ([]Vec, bool) {
	dir, ok := e.direction(aim)
	if !ok {
		return nil, false
	}
	pos := e.cfg.Launcher
	vel := dir.Scale(e.cfg.TrajectoryStep)

	pts := make([]Vec, 0, 64)
	pts = append(pts, pos)
	for i := 0; i < e.cfg.TrajectoryLimit; i++ {
		pos, vel, _ = e.advance(pos, vel)
		pts = append(pts, pos)
		if e.hitsCeiling(pos) {
			return pts, true
		}
		if _, hit := e.firstCollision(b, pos); hit {
			return pts, true
		}
	}
	return pts, false
}
