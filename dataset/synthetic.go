package dataset

import "avbdata/tensor"

// EightSchools holds the treatment effect estimates and standard errors of
// the eight parallel randomized experiments from Rubin (1981), "Estimation in
// parallel randomized experiments".
type EightSchools struct {
	Effect []float64
	StdErr []float64
}

// LoadEightSchools returns the fixed eight-schools vectors. No inputs, no
// randomness, no I/O.
func LoadEightSchools() EightSchools {
	//   school effect stderr
	// 1      A  28.39   14.9
	// 2      B   7.74   10.2
	// 3      C  -2.75   16.3
	// 4      D   6.82   11.0
	// 5      E  -0.64    9.4
	// 6      F   0.63   11.4
	// 7      G  18.01   10.4
	// 8      H  12.16   17.6
	return EightSchools{
		Effect: []float64{28.39, 7.74, -2.75, 6.82, -0.64, 0.63, 18.01, 12.16},
		StdErr: []float64{14.9, 10.2, 16.3, 11.0, 9.4, 11.4, 10.4, 17.6},
	}
}

// LoadNPoints returns the synthetic point cloud from the generative-model
// experiments in Mescheder et al. (2017), "Adversarial Variational Bayes":
// n distinct unit basis vectors in n-dimensional space, one per class, with
// targets 0..n-1. The classic configuration is n=4. Non-positive n yields an
// empty dataset.
func LoadNPoints(n int) *Dataset {
	if n <= 0 {
		return &Dataset{Data: tensor.New(0, 0), Target: tensor.New(0)}
	}
	target := tensor.New(n)
	for i := 0; i < n; i++ {
		target.Data[i] = float64(i)
	}
	return &Dataset{Data: tensor.Eye(n), Target: target}
}
