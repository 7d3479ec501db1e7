package dataset

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeImageFile builds an IDX image blob: 16-byte header + raw pixels.
func encodeImageFile(magic uint32, count, rows, cols int, pixels []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{magic, uint32(count), uint32(rows), uint32(cols)} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(pixels)
	return buf.Bytes()
}

// encodeLabelFile builds an IDX label blob: 8-byte header + raw labels.
func encodeLabelFile(magic uint32, count int, labels []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{magic, uint32(count)} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(labels)
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0644))
}

// fixtureCorpus is a tiny coherent MNIST-shaped corpus: 2x2 images, three
// training and two test examples.
type fixtureCorpus struct {
	trainPixels []byte
	testPixels  []byte
	trainLabels []byte
	testLabels  []byte
}

func defaultCorpus() fixtureCorpus {
	return fixtureCorpus{
		trainPixels: []byte{
			0, 51, 102, 153, // image 0
			204, 255, 0, 51, // image 1
			255, 0, 255, 0, // image 2
		},
		testPixels: []byte{
			10, 20, 30, 40, // image 3
			250, 240, 230, 220, // image 4
		},
		trainLabels: []byte{0, 1, 2},
		testLabels:  []byte{1, 0},
	}
}

// writeMNISTDir writes the four IDX blobs for corpus into a temp dir.
func writeMNISTDir(t *testing.T, corpus fixtureCorpus) string {
	t.Helper()
	dir := t.TempDir()
	writeMNISTDirInto(t, dir, corpus)
	return dir
}

func writeMNISTDirInto(t *testing.T, dir string, corpus fixtureCorpus) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	writeFile(t, dir, trainImagesFile,
		encodeImageFile(imageMagic, len(corpus.trainPixels)/4, 2, 2, corpus.trainPixels))
	writeFile(t, dir, testImagesFile,
		encodeImageFile(imageMagic, len(corpus.testPixels)/4, 2, 2, corpus.testPixels))
	writeFile(t, dir, trainLabelsFile,
		encodeLabelFile(labelMagic, len(corpus.trainLabels), corpus.trainLabels))
	writeFile(t, dir, testLabelsFile,
		encodeLabelFile(labelMagic, len(corpus.testLabels), corpus.testLabels))
}
