// Copyright 2025 not-a-simd-lib Authors
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

// Command vecgen stamps out named, monomorphic elementwise operations for
// the simd package, one exported function per (operation, lane type) pair.
//
// Usage:
//
//	vecgen -ops add,sub,mul,div -types float32,int32 -pkg simd -output z_ops_named.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vecgen -ops add,sub,mul,div -types float32,float64,int32,int64 -pkg simd -output z_ops_named.go
//
// Output is deterministic for a given flag set: operations and types are
// emitted in the order given, and the file carries a generated-code header.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	opsFlag   = flag.String("ops", "add,sub,mul,div", "Comma-separated operation names ("+strings.Join(opNames(), ",")+")")
	typesFlag = flag.String("types", "float32,float64,int32,int64", "Comma-separated lane types ("+strings.Join(laneTypeNames(), ",")+")")
	pkgFlag   = flag.String("pkg", "simd", "Output package name")
	outFlag   = flag.String("output", "-", "Output file path, or - for stdout")
)

func main() {
	flag.Parse()

	cfg := genConfig{
		Ops:   splitList(*opsFlag),
		Types: splitList(*typesFlag),
		Pkg:   *pkgFlag,
	}

	src, err := generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecgen: %v\n", err)
		os.Exit(1)
	}

	if *outFlag == "-" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outFlag, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "vecgen: write %s: %v\n", *outFlag, err)
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
