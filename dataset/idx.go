package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"avbdata/tensor"
)

// IDX magic numbers for the two file kinds.
const (
	imageMagic = 2051
	labelMagic = 2049
)

// The blobs are assumed to carry the original MNIST filenames.
const (
	trainImagesFile = "train-images-idx3-ubyte"
	testImagesFile  = "t10k-images-idx3-ubyte"
	trainLabelsFile = "train-labels-idx1-ubyte"
	testLabelsFile  = "t10k-labels-idx1-ubyte"
)

var idxFiles = []string{trainImagesFile, trainLabelsFile, testImagesFile, testLabelsFile}

// ReadImages parses an IDX image file: a 16-byte header of four big-endian
// uint32s (magic, count, rows, cols) followed by count*rows*cols uint8 pixels.
// Pixels are scaled to [0,1] and returned as a count×(rows*cols) tensor.
func ReadImages(dir, name string) (*tensor.Tensor, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	var hdr struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(f, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", name, err)
	}
	if hdr.Magic != imageMagic {
		return nil, &ErrBadMagic{File: name, Want: imageMagic, Got: hdr.Magic}
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read payload: %w", name, err)
	}
	want := int(hdr.Count) * int(hdr.Rows) * int(hdr.Cols)
	if len(raw) != want {
		return nil, &ErrShortPayload{File: name, Want: want, Got: len(raw)}
	}

	data := make([]float64, len(raw))
	for i, b := range raw {
		data[i] = float64(b)
	}
	floats.Scale(1.0/255.0, data)

	return &tensor.Tensor{
		Data:  data,
		Shape: []int{int(hdr.Count), int(hdr.Rows) * int(hdr.Cols)},
	}, nil
}

// ReadLabels parses an IDX label file: an 8-byte header of two big-endian
// uint32s (magic, count) followed by count int8 class indices. Labels are
// returned as a 1-D tensor of length count.
func ReadLabels(dir, name string) (*tensor.Tensor, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open label file: %w", err)
	}
	defer f.Close()

	var hdr struct {
		Magic, Count uint32
	}
	if err := binary.Read(f, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", name, err)
	}
	if hdr.Magic != labelMagic {
		return nil, &ErrBadMagic{File: name, Want: labelMagic, Got: hdr.Magic}
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read payload: %w", name, err)
	}
	if len(raw) != int(hdr.Count) {
		return nil, &ErrShortPayload{File: name, Want: int(hdr.Count), Got: len(raw)}
	}

	data := make([]float64, len(raw))
	for i, b := range raw {
		data[i] = float64(int8(b))
	}
	return tensor.NewWithData(data), nil
}

// readIDXDir reads the four MNIST blobs in dir and concatenates the training
// and test splits, preserving per-record correspondence.
func readIDXDir(dir string) (images, labels *tensor.Tensor, err error) {
	trainImgs, err := ReadImages(dir, trainImagesFile)
	if err != nil {
		return nil, nil, err
	}
	testImgs, err := ReadImages(dir, testImagesFile)
	if err != nil {
		return nil, nil, err
	}
	images, err = tensor.Concat(trainImgs, testImgs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to concatenate image splits: %w", err)
	}

	trainLbls, err := ReadLabels(dir, trainLabelsFile)
	if err != nil {
		return nil, nil, err
	}
	testLbls, err := ReadLabels(dir, testLabelsFile)
	if err != nil {
		return nil, nil, err
	}
	labels, err = tensor.Concat(trainLbls, testLbls)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to concatenate label splits: %w", err)
	}
	return images, labels, nil
}
