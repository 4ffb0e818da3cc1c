// component/movement.go
package component

// Velocity — смещение за один кадр
type Velocity struct {
	DX, DY float64
}
