package model

// Coefficients holds the three degree-two ellipticity coefficients of a
// ray path, indexed by azimuthal order m = 0, 1, 2. Units are seconds.
type Coefficients [3]float64

// Add returns the element-wise sum of c and o.
func (c Coefficients) Add(o Coefficients) Coefficients {
	return Coefficients{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

// Sub returns the element-wise difference of c and o.
func (c Coefficients) Sub(o Coefficients) Coefficients {
	return Coefficients{c[0] - o[0], c[1] - o[1], c[2] - o[2]}
}

// Scale returns c with every element multiplied by f.
func (c Coefficients) Scale(f float64) Coefficients {
	return Coefficients{c[0] * f, c[1] * f, c[2] * f}
}
