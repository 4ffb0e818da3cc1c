// internal/event/types.go
package event

const (
	BulletFired    EventType = "BulletFired"    // Игрок выстрелил
	EnemyDestroyed EventType = "EnemyDestroyed" // Пуля сбила врага, Data: *entity.Enemy
	EnemyEscaped   EventType = "EnemyEscaped"   // Враг ушёл за нижний край, Data: *entity.Enemy
	WaveStarted    EventType = "WaveStarted"    // Data: номер волны
	WaveCleared    EventType = "WaveCleared"    // Рой уничтожен, начался отсчёт, Data: номер волны
	WavesCompleted EventType = "WavesCompleted" // Все волны пройдены
)
