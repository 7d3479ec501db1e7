package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"avbdata/tensor"
)

// Dataset pairs feature rows with index-aligned targets.
type Dataset struct {
	Data   *tensor.Tensor
	Target *tensor.Tensor
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return d.Data.Rows()
}

// Validate checks that data and target rows are aligned
func (d *Dataset) Validate() error {
	if d.Data == nil || d.Target == nil {
		return fmt.Errorf("dataset has nil data or target")
	}
	if d.Data.Rows() != d.Target.Rows() {
		return fmt.Errorf("data/target length mismatch: %d vs %d", d.Data.Rows(), d.Target.Rows())
	}
	return nil
}

// tensorData is the serializable form of a tensor
type tensorData struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// datasetFile is the on-disk cache layout for a parsed dataset
type datasetFile struct {
	Version string     `json:"version"`
	Data    tensorData `json:"data"`
	Target  tensorData `json:"target"`
}

const cacheVersion = "1"

// SaveDataset saves a parsed dataset to a JSON file
func SaveDataset(path string, ds *Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	file := datasetFile{
		Version: cacheVersion,
		Data:    tensorData{Shape: ds.Data.Shape, Data: ds.Data.Data},
		Target:  tensorData{Shape: ds.Target.Shape, Data: ds.Target.Data},
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDataset loads a previously saved dataset from a JSON file
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	var file datasetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}
	if file.Version != cacheVersion {
		return nil, fmt.Errorf("unsupported dataset file version %q", file.Version)
	}
	ds := &Dataset{
		Data:   &tensor.Tensor{Data: file.Data.Data, Shape: file.Data.Shape},
		Target: &tensor.Tensor{Data: file.Target.Data, Shape: file.Target.Shape},
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}
