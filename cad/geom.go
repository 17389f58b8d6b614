package cad

import "fmt"

type XY struct {
	X, Y float64
}

type XYZ struct {
	X, Y, Z float64
}

var (
	AxisZ = XYZ{Z: 1}
	One   = XYZ{X: 1, Y: 1, Z: 1}
)

func (p XY) String() string  { return fmt.Sprintf("%g,%g", p.X, p.Y) }
func (p XYZ) String() string { return fmt.Sprintf("%g,%g,%g", p.X, p.Y, p.Z) }
