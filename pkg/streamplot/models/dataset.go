package models

// Dataset is an ordered sequence of samples as loaded from the data file.
// Order is significant and is preserved into the axis series.
type Dataset []Sample

// Axes holds the two parallel series projected from a Dataset.
type Axes struct {
	// X contains the first component of every sample, in dataset order.
	X []float64
	// Y contains the second component of every sample, in dataset order.
	Y []float64
}

// Len returns the number of points. It is the length of the shorter series.
func (a Axes) Len() int {
	if len(a.X) < len(a.Y) {
		return len(a.X)
	}
	return len(a.Y)
}

// Zip rebuilds the dataset the axes were projected from.
func (a Axes) Zip() Dataset {
	n := a.Len()
	ds := make(Dataset, n)
	for i := 0; i < n; i++ {
		ds[i] = Sample{X: a.X[i], Y: a.Y[i]}
	}
	return ds
}
