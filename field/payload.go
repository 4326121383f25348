// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Payload is the JSON document a data service returns for a field:
//
//	{"data": [...], "width": 3, "height": 2, "minValue": 0, "maxValue": 1}
//
// Data is row-major. When minValue or maxValue are absent they are
// computed from the data.
type Payload struct {
	Data     []float32 `json:"data"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	MinValue *float32  `json:"minValue,omitempty"`
	MaxValue *float32  `json:"maxValue,omitempty"`
}

// Field returns a new [Field] from the payload.
func (p *Payload) Field() (*Field, error) {
	rng := MinMax(p.Data)
	if p.MinValue != nil {
		rng.Min = *p.MinValue
	}
	if p.MaxValue != nil {
		rng.Max = *p.MaxValue
	}
	return New(p.Data, p.Width, p.Height, rng.Min, rng.Max)
}

// DecodePayload decodes a JSON [Payload] from r and returns its [Field].
func DecodePayload(r io.Reader) (*Field, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("field: decoding payload: %w", err)
	}
	return p.Field()
}

// OpenPayload opens the JSON payload file at the given path and returns its [Field].
func OpenPayload(filename string) (*Field, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fd, err := DecodePayload(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return fd, nil
}

// EncodePayload writes the field as a JSON [Payload] to w.
func EncodePayload(w io.Writer, f *Field) error {
	mn, mx := f.Range.Min, f.Range.Max
	p := Payload{Data: f.Data, Width: f.Width, Height: f.Height, MinValue: &mn, MaxValue: &mx}
	return json.NewEncoder(w).Encode(&p)
}
