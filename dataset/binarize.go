package dataset

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"avbdata/tensor"
)

// BinarizeMode selects how pixel intensities are mapped to {0,1}.
type BinarizeMode string

const (
	// ModeSampling draws each pixel from a Bernoulli distribution with the
	// pixel intensity as success probability.
	ModeSampling BinarizeMode = "sampling"
	// ModeThreshold maps each pixel to 1 when strictly above the threshold.
	ModeThreshold BinarizeMode = "threshold"
)

// DefaultThreshold is used by ModeThreshold when no threshold is given.
const DefaultThreshold = 0.5

// Binarize maps a tensor of [0,1] intensities to 0/1 values. ModeSampling
// needs a random source; ModeThreshold ignores it. The threshold only applies
// to ModeThreshold; pass DefaultThreshold unless overriding.
func Binarize(t *tensor.Tensor, mode BinarizeMode, threshold float64, src rand.Source) (*tensor.Tensor, error) {
	out := tensor.New(t.Shape...)
	switch mode {
	case ModeSampling:
		if src == nil {
			return nil, fmt.Errorf("sampling binarization requires a random source")
		}
		for i, p := range t.Data {
			bern := distuv.Bernoulli{P: p, Src: src}
			out.Data[i] = bern.Rand()
		}
	case ModeThreshold:
		for i, v := range t.Data {
			if v > threshold {
				out.Data[i] = 1
			}
		}
	default:
		return nil, fmt.Errorf("unknown binarization mode %q", mode)
	}
	return out, nil
}

// OneHot converts a 1-D tensor of integer class labels into a 2-D one-hot
// tensor. The width is the number of distinct labels observed; labels are
// remapped to their index in the sorted distinct-label order, so sparse label
// sets produce dense encodings.
func OneHot(labels *tensor.Tensor) (*tensor.Tensor, error) {
	if len(labels.Shape) != 1 {
		return nil, fmt.Errorf("one-hot encoding requires 1-D labels, got shape %v", labels.Shape)
	}
	seen := make(map[float64]struct{}, 10)
	for _, v := range labels.Data {
		seen[v] = struct{}{}
	}
	distinct := make([]float64, 0, len(seen))
	for v := range seen {
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)
	index := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		index[v] = i
	}

	out := tensor.New(len(labels.Data), len(distinct))
	for i, v := range labels.Data {
		out.Data[i*len(distinct)+index[v]] = 1
	}
	return out, nil
}
