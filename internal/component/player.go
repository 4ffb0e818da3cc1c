// internal/component/player.go
package component

// Stats хранит счёт и здоровье игрока за одну партию.
type Stats struct {
	Score   int
	Health  int
	Kills   int
	Escaped int

	WavesCleared int
}

// AddKill начисляет очки за уничтоженного врага.
func (s *Stats) AddKill(points int) {
	s.Kills++
	s.Score += points
}

// TakeEscape списывает здоровье за прорвавшегося врага; здоровье не уходит ниже нуля.
func (s *Stats) TakeEscape(penalty int) {
	s.Escaped++
	s.Health -= penalty
	if s.Health < 0 {
		s.Health = 0
	}
}

// Alive reports whether health remains.
func (s *Stats) Alive() bool {
	return s.Health > 0
}
