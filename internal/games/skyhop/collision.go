package skyhop

// DetectCollision reports whether the player touches any barrier.
// Returns on the first hit.
func DetectCollision(player Player, obstacles []Obstacle, worldH float64) bool {
	pr := player.Rect()
	for _, o := range obstacles {
		if pr.Intersects(o.TopRect()) || pr.Intersects(o.BottomRect(worldH)) {
			return true
		}
	}
	return false
}
