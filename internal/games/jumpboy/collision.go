package jumpboy

// resolveBalls applies one frame of ball/jumper interaction and returns the
// points earned. Per ball, in order:
//
//  1. dead balls are dropped; balls past the far edge pay their point and
//     are dropped
//  2. unless the jumper is invulnerable, a rolling ball touching the jumper
//     is either stomped (burst, pays) or hurts the jumper (struck, no pay)
//  3. a ball that bounced and did not collide pays, unless the jumper fell
//
// A ball therefore pays at most once per frame, and never after a strike.
func resolveBalls(snap *Snapshot) int {
	j, f := snap.Jumper, snap.Field
	point := 0

	kept := make([]*Ball, 0, len(snap.Balls))
	for _, b := range snap.Balls {
		if b.Dead() {
			continue
		}
		if b.Exited(f) {
			logger.Debug("ball exit", "id", b.ID, "point", b.Point())
			point += b.Point()
			continue
		}
		kept = append(kept, b)

		collided := false
		if !j.Damaging() && b.Spinning() && b.Box().Hit(j.Box()) {
			collided = true
			if attacks(j, b) {
				b.Burst()
				point += b.Point()
			} else {
				b.Strike()
				j.Damage()
			}
		}

		if !collided && b.Bounced() && !j.FallingDown() {
			point += b.Point()
		}
	}
	snap.Balls = kept
	return point
}

// attacks reports a stomp: the jumper is falling, its feet are within the
// ball's height and its center is above the ball.
func attacks(j *Jumper, b *Ball) bool {
	if !j.Descending() {
		return false
	}
	ball := b.Box()
	feet, center := j.Bottom(), j.Center().X
	return ball.Top() <= feet && feet <= ball.Bottom() &&
		ball.Left() <= center && center <= ball.Right()
}
