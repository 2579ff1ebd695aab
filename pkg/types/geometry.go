package types

// pixel coordinate, origin at the top-left corner
type Pointi struct {
	X int
	Y int
}

// point in the complex plane, X is the real part and Y the imaginary part
type Pointf64 struct {
	X float64
	Y float64
}

func (p Pointf64) Complex() complex128 {
	return complex(p.X, p.Y)
}
