// Package input reads and writes interval lists in the exercise file format:
//
//	# intervals.yaml
//	- positions: [1, 5]
//	  values: [A, B]
//	- positions: [10, 15]
//	  values: [C]
//
// JSON documents with the same shape are accepted as well, since YAML 1.2
// parses them.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coursework/intervals"
)

var (
	// ErrInvalidRecord wraps decode, shape and bounds failures.
	ErrInvalidRecord = errors.New("input: invalid interval record")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("input: unknown output format")
)

var validate = validator.New()

// record is the on-disk shape of one interval.
type record struct {
	Positions []float64 `yaml:"positions" json:"positions" validate:"required,len=2"`
	Values    []string  `yaml:"values" json:"values" default:"[]"`
}

// LoadIntervals decodes the file at path.
func LoadIntervals(path string) ([]intervals.Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	xs, err := DecodeIntervals(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return xs, nil
}

// DecodeIntervals reads a YAML or JSON list of records and converts each one
// with intervals.New. The first failure is reported with its index.
func DecodeIntervals(r io.Reader) ([]intervals.Interval, error) {
	var recs []record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	out := make([]intervals.Interval, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		if err := defaults.Set(rec); err != nil {
			return nil, fmt.Errorf("%w: [%d]: %w", ErrInvalidRecord, i, err)
		}
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: [%d]: positions must hold exactly [left, right]", ErrInvalidRecord, i)
		}
		iv, err := intervals.New(rec.Positions[0], rec.Positions[1], rec.Values...)
		if err != nil {
			return nil, fmt.Errorf("%w: [%d]: %w", ErrInvalidRecord, i, err)
		}
		out = append(out, iv)
	}

	return out, nil
}

// EncodeIntervals writes xs as "yaml", "json" or "text" (one String per line).
func EncodeIntervals(w io.Writer, xs []intervals.Interval, format string) error {
	recs := make([]record, len(xs))
	for i, iv := range xs {
		values := iv.Values
		if values == nil {
			values = []string{}
		}
		recs[i] = record{Positions: []float64{iv.Left, iv.Right}, Values: values}
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "text":
		for _, iv := range xs {
			if _, err := fmt.Fprintln(w, iv); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
