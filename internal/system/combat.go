// internal/system/combat.go
package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// CombatSystem разрешает попадания пуль во врагов и прорывы врагов вниз.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	killScore       int
	escapePenalty   int

	bulletHit []bool
	enemyHit  []bool
	removed   []*entity.Enemy
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, killScore, escapePenalty int) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		killScore:       killScore,
		escapePenalty:   escapePenalty,
	}
}

// Resolve checks every bullet against enemies in stored order. A bullet
// kills at most one enemy per frame and an enemy can be hit only once.
// Hits are removed after the scan. Returns the number of kills.
func (s *CombatSystem) Resolve() int {
	bullets, enemies := s.world.Bullets, s.world.Enemies
	s.bulletHit = resetMarks(s.bulletHit, len(bullets))
	s.enemyHit = resetMarks(s.enemyHit, len(enemies))
	s.removed = s.removed[:0]

	for i, b := range bullets {
		br := b.Bounds()
		for j, e := range enemies {
			if s.enemyHit[j] || !br.Intersects(e.Bounds()) {
				continue
			}
			s.bulletHit[i] = true
			s.enemyHit[j] = true
			s.world.Stats.AddKill(s.killScore)
			s.removed = append(s.removed, e)
			break
		}
	}

	if len(s.removed) == 0 {
		return 0
	}

	s.world.Bullets = compact(bullets, s.bulletHit)
	s.world.Enemies = compact(enemies, s.enemyHit)

	for _, e := range s.removed {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: e})
	}
	return len(s.removed)
}

// RemoveEscaped drops enemies below the screen, charging health for each.
func (s *CombatSystem) RemoveEscaped() int {
	enemies := s.world.Enemies
	s.enemyHit = resetMarks(s.enemyHit, len(enemies))
	s.removed = s.removed[:0]

	for j, e := range enemies {
		if e.IsOffScreen(s.world.ScreenHeight) {
			s.enemyHit[j] = true
			s.world.Stats.TakeEscape(s.escapePenalty)
			s.removed = append(s.removed, e)
		}
	}

	if len(s.removed) == 0 {
		return 0
	}

	s.world.Enemies = compact(enemies, s.enemyHit)
	for _, e := range s.removed {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: e})
	}
	return len(s.removed)
}

func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	clear(marks)
	return marks
}

// compact убирает помеченные элементы, сохраняя порядок остальных.
func compact[T any](items []*T, marked []bool) []*T {
	kept := items[:0]
	for i, it := range items {
		if !marked[i] {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
