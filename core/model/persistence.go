package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SaveModel saves a model to a file using gob encoding.
//
// Parameters:
//   - model: the model to save (typically a pointer to a struct composing
//     a StateManager)
//   - filename: destination path
//
// Example:
//
//	type fit struct{ Parameters []float32 }
//	err := model.SaveModel(&fit{Parameters: params}, "fit.gob")
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	return nil
}

// LoadModel loads a model from a file using gob decoding.
//
// Parameters:
//   - model: destination (a pointer)
//   - filename: source path
//
// Example:
//
//	var f fit
//	err := model.LoadModel(&f, "fit.gob")
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(model); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}

	return nil
}

// SaveModelToWriter encodes a model to an io.Writer.
func SaveModelToWriter(model interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// LoadModelFromReader decodes a model from an io.Reader.
func LoadModelFromReader(model interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(model); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}
	return nil
}
