// Copyright ©2025 The mmt4d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command compare checks an actual result dump against an expected one and
// prints a human-readable diff for any mismatch.
//
// Dump files are JSON:
//
//	{"results": [{"kind": "f32", "values": [12.0, 17.0]}]}
//
// with kind one of i8, i16, i32, i64, f16, f32, f64. Exits non-zero when
// the results differ.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/ukernel/mmt4d/compare"
)

type resultFile struct {
	Results []resultEntry `json:"results"`
}

type resultEntry struct {
	Kind   string    `json:"kind"`
	Values []float64 `json:"values"`
}

func main() {
	var (
		expectedFile = flag.String("expected", "expected.json", "Expected results file")
		actualFile   = flag.String("actual", "actual.json", "Actual results file")
		absTol       = flag.Float64("abs-tol", float64(compare.DefaultTolerance().AbsTol), "Absolute tolerance for float comparison")
		relTol       = flag.Float64("rel-tol", float64(compare.DefaultTolerance().RelTol), "Relative tolerance for float comparison")
		ulpTol       = flag.Int("ulp-tol", compare.DefaultTolerance().ULPTol, "Maximum ULP difference for float comparison")
	)
	flag.Parse()

	expected, err := loadResults(*expectedFile)
	if err != nil {
		log.Fatalf("Failed to load expected results: %v", err)
	}

	actual, err := loadResults(*actualFile)
	if err != nil {
		log.Fatalf("Failed to load actual results: %v", err)
	}

	tol := compare.DefaultTolerance()
	tol.AbsTol = float32(*absTol)
	tol.RelTol = float32(*relTol)
	tol.ULPTol = *ulpTol

	ok, diff := compare.CompareResults(expected, actual, tol)
	if !ok {
		fmt.Print(diff)
		os.Exit(1)
	}
	fmt.Printf("all %d results match\n", len(expected))
}

func loadResults(filename string) ([]compare.BufferView, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}

	var file resultFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}

	views := make([]compare.BufferView, 0, len(file.Results))
	for i, entry := range file.Results {
		view, err := entry.toView()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: results[%d]", filename, i)
		}
		views = append(views, view)
	}
	return views, nil
}

func (e resultEntry) toView() (compare.BufferView, error) {
	switch e.Kind {
	case "i8":
		v := make([]int8, len(e.Values))
		for i, x := range e.Values {
			v[i] = int8(x)
		}
		return compare.FromInt8(v), nil
	case "i16":
		v := make([]int16, len(e.Values))
		for i, x := range e.Values {
			v[i] = int16(x)
		}
		return compare.FromInt16(v), nil
	case "i32":
		v := make([]int32, len(e.Values))
		for i, x := range e.Values {
			v[i] = int32(x)
		}
		return compare.FromInt32(v), nil
	case "i64":
		v := make([]int64, len(e.Values))
		for i, x := range e.Values {
			v[i] = int64(x)
		}
		return compare.FromInt64(v), nil
	case "f16":
		v := make([]uint16, len(e.Values))
		for i, x := range e.Values {
			v[i] = float16.Fromfloat32(float32(x)).Bits()
		}
		return compare.FromFloat16(v), nil
	case "f32":
		v := make([]float32, len(e.Values))
		for i, x := range e.Values {
			v[i] = float32(x)
		}
		return compare.FromFloat32(v), nil
	case "f64":
		return compare.FromFloat64(e.Values), nil
	default:
		return compare.BufferView{}, errors.Errorf("unknown element kind %q", e.Kind)
	}
}
