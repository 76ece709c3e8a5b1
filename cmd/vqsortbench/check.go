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
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/vqsort"
)

func newCheckCmd() *cobra.Command {
	var n int
	var dtype string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sort random data and verify the result with IsSorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, n, dtype)
		},
	}
	cmd.Flags().IntVar(&n, "n", 10_000, "number of elements")
	cmd.Flags().StringVar(&dtype, "type", "int32", "element type: int32 or float64")
	return cmd
}

func runCheck(cmd *cobra.Command, n int, dtype string) error {
	n = vqsort.Clamp(n, 0, 100_000_000)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	switch dtype {
	case "int32":
		data := make([]int32, n)
		for i := range data {
			data[i] = r.Int31()
		}
		vqsort.Sort(data)
		if !vqsort.IsSorted(data) {
			return fmt.Errorf("sort did not produce a sorted slice")
		}
	case "float64":
		data := make([]float64, n)
		for i := range data {
			data[i] = r.Float64()
		}
		vqsort.Sort(data)
		if !vqsort.IsSorted(data) {
			return fmt.Errorf("sort did not produce a sorted slice")
		}
	default:
		return fmt.Errorf("unknown -type %q (want int32 or float64)", dtype)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s n=%d: sorted ok\n", dtype, n)
	return nil
}
