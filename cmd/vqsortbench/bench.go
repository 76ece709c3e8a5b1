// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/vqsort"
)

func newBenchCmd() *cobra.Command {
	var n int
	var dtype string
	var op string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time vqsort against the standard library on random data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, n, dtype, op)
		},
	}
	cmd.Flags().IntVar(&n, "n", 100_000, "number of elements")
	cmd.Flags().StringVar(&dtype, "type", "int32", "element type: int32 or float64")
	cmd.Flags().StringVar(&op, "op", "sort", "operation: sort or select")
	return cmd
}

func runBench(cmd *cobra.Command, n int, dtype, op string) error {
	n = vqsort.Clamp(n, 1, 100_000_000)
	out := cmd.OutOrStdout()
	switch dtype {
	case "int32":
		return benchInt32(out, n, op)
	case "float64":
		return benchFloat64(out, n, op)
	default:
		return fmt.Errorf("unknown -type %q (want int32 or float64)", dtype)
	}
}

func benchInt32(out io.Writer, n int, op string) error {
	r := rand.New(rand.NewSource(1))
	src := make([]int32, n)
	for i := range src {
		src[i] = r.Int31()
	}

	vq := append([]int32(nil), src...)
	std := append([]int32(nil), src...)

	start := time.Now()
	switch op {
	case "sort":
		vqsort.Sort(vq)
	case "select":
		vqsort.Select(vq, n/2, n, false)
	default:
		return fmt.Errorf("unknown -op %q", op)
	}
	vqElapsed := time.Since(start)

	start = time.Now()
	switch op {
	case "sort":
		sort.Slice(std, func(i, j int) bool { return std[i] < std[j] })
	case "select":
		sort.Slice(std, func(i, j int) bool { return std[i] < std[j] })
	}
	stdElapsed := time.Since(start)

	fmt.Fprintf(out, "int32 n=%d op=%s: vqsort=%v stdlib=%v\n", n, op, vqElapsed, stdElapsed)
	return nil
}

func benchFloat64(out io.Writer, n int, op string) error {
	r := rand.New(rand.NewSource(1))
	src := make([]float64, n)
	for i := range src {
		src[i] = r.Float64()
	}

	vq := append([]float64(nil), src...)
	std := append([]float64(nil), src...)

	start := time.Now()
	switch op {
	case "sort":
		vqsort.Sort(vq)
	case "select":
		vqsort.Select(vq, n/2, n, false)
	default:
		return fmt.Errorf("unknown -op %q", op)
	}
	vqElapsed := time.Since(start)

	start = time.Now()
	sort.Slice(std, func(i, j int) bool { return std[i] < std[j] })
	stdElapsed := time.Since(start)

	fmt.Fprintf(out, "float64 n=%d op=%s: vqsort=%v stdlib=%v\n", n, op, vqElapsed, stdElapsed)
	return nil
}
