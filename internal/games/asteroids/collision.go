package asteroids

// All tests are circle approximations of the drawn silhouettes.

// shipsCollide compares center distance with the mean of the size diagonals.
func shipsCollide(a, b *Ship) bool {
	return a.Pos.Distance(b.Pos) <= (a.Size.Length()+b.Size.Length())/2
}

// asteroidHitsShip compares center distance with the asteroid radius plus
// half the ship size.
func asteroidHitsShip(a *Asteroid, s *Ship) bool {
	return a.Pos.Distance(s.Pos) <= a.Radius+s.Size.X/2
}

// resolveCollisions runs the collision rules in their fixed order. Later
// rules rely on earlier ones having already killed what they hit.
func (g *Game) resolveCollisions() {
	g.humanVsAliens()
	g.shipsVsAsteroids()
	g.missilesVsShips()
	g.missilesVsAsteroids()
	g.missilesOutOfBounds()
	if g.lives == 0 {
		g.enterGameOver()
	}
	g.bestScoreCheck()
}

// humanVsAliens rams the human into a saucer. The big saucer is checked first
// and a hit on it skips the small one.
func (g *Game) humanVsAliens() {
	human := g.ships[ShipHuman]
	if !human.alive {
		return
	}
	for _, c := range []ShipClass{ShipAlienBig, ShipAlienSmall} {
		alien := g.ships[c]
		if !alien.alive || !alien.visible || !shipsCollide(human, alien) {
			continue
		}
		human.Explode(g.rng, g.sound)
		alien.Explode(g.rng, g.sound)
		g.loseLife()
		return
	}
}

// shipsVsAsteroids explodes each asteroid together with the first live ship
// it overlaps.
func (g *Game) shipsVsAsteroids() {
	for _, a := range g.asteroids {
		if !a.alive {
			continue
		}
		for _, s := range g.ships {
			if !s.alive || !s.visible || !asteroidHitsShip(a, s) {
				continue
			}
			a.Explode(g.rng, g.sound)
			s.Explode(g.rng, g.sound)
			if s.Class == ShipHuman {
				g.loseLife()
			}
			break
		}
	}
}

// missilesVsShips destroys ships hit by another ship's missile. Shields
// absorb hits.
func (g *Game) missilesVsShips() {
	for _, m := range g.missiles {
		if !m.Armed {
			continue
		}
		for _, s := range g.ships {
			if s.Class == m.FiredBy || !s.alive || s.shieldActive || !s.CollidesAt(m.Pos) {
				continue
			}
			m.Disarm()
			s.Explode(g.rng, g.sound)
			switch s.Class {
			case ShipHuman:
				g.loseLife()
				if g.lives == 0 {
					g.enterGameOver()
				}
			case ShipAlienBig:
				g.addScore(g.cfg.Aliens.BigScore)
			case ShipAlienSmall:
				g.addScore(g.cfg.Aliens.SmallScore)
			}
			break
		}
	}
}

// missilesVsAsteroids destroys and splits asteroids hit by a missile.
// Children are appended to the collection and take part in the rest of
// this pass.
func (g *Game) missilesVsAsteroids() {
	for _, m := range g.missiles {
		if !m.Armed {
			continue
		}
		for i := 0; i < len(g.asteroids); i++ {
			a := g.asteroids[i]
			if !a.alive || !a.CollidesWith(m.Pos) {
				continue
			}
			m.Disarm()
			a.Explode(g.rng, g.sound)
			g.addScore(a.Class.params(g.cfg.Asteroids).Score)
			g.asteroids = append(g.asteroids, a.Split(g.rng)...)
			break
		}
	}
}

// missilesOutOfBounds spends missiles that left the arena.
func (g *Game) missilesOutOfBounds() {
	w, h := g.bounds()
	for _, m := range g.missiles {
		if m.Armed && !m.inside(w, h) {
			m.Disarm()
		}
	}
}

func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
}

func (g *Game) addScore(points int) {
	g.score += points
}

