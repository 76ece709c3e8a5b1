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

// Command vqsortbench runs and times vqsort's Sort/Select against stdlib
// sort.Slice on randomly generated int32 or float64 data, and can also
// just run a correctness check.
//
// Usage:
//
//	vqsortbench bench --n 1000000 --type float64
//	vqsortbench check --n 10000 --type int32
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vqsortbench",
		Short: "Benchmark and exercise the vqsort library",
	}
	root.AddCommand(newBenchCmd())
	root.AddCommand(newCheckCmd())
	return root
}
