// Copyright 2025 go-reduceflicker Authors
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

// Command rfgen generates the flicker kernel dispatch table.
//
// Usage:
//
//	rfgen -output ztable.go -pkg flicker
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/rfgen -output ztable.go -pkg flicker
//
// The table lists one entry per (tier, strength, variant, sample kind)
// combination, so every kernel instantiation is spelled out in source.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "ztable.go", "Output file")
	packageOut = flag.String("pkg", "flicker", "Output package name")
	check      = flag.Bool("check", false, "Report an error if the output file is out of date instead of writing it")
)

func main() {
	flag.Parse()

	src, err := Generate(*packageOut, *outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *check {
		old, err := os.ReadFile(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if string(old) != string(src) {
			fmt.Fprintf(os.Stderr, "Error: %s is out of date, run go generate\n", *outputFile)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d kernel entries in %s\n", len(Entries()), *outputFile)
}
