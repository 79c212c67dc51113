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

package main

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// knownOps are the operation names vecgen can stamp out. Each maps to the
// generic builtin in the simd package that the named wrapper delegates to.
var knownOps = []string{"add", "sub", "mul", "div"}

// knownTypes are the lane types vecgen can stamp out wrappers for.
var knownTypes = []string{
	"float32", "float64",
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
}

func opNames() []string       { return knownOps }
func laneTypeNames() []string { return knownTypes }

// genConfig describes one generation run.
type genConfig struct {
	Ops   []string
	Types []string
	Pkg   string
}

// namedFunc is one stamped-out wrapper in the output file.
type namedFunc struct {
	Name    string // exported wrapper name, e.g. AddFloat32
	Op      string // operation name as given, e.g. add
	Generic string // generic builtin to delegate to, e.g. Add
	Type    string // lane type, e.g. float32
}

type templateData struct {
	Args  string // flag arguments recorded in the header
	Pkg   string
	Qual  string // "simd." when generating outside the simd package
	Funcs []namedFunc
}

const fileTemplate = `// Code generated by vecgen {{.Args}}; DO NOT EDIT.

// This file stamps out one concrete named function per (operation, lane
// type) pair. The named forms behave identically to the generic builtins
// they wrap; they exist for callers that want a flat, monomorphic API.

package {{.Pkg}}
{{if .Qual}}
import "github.com/Paulo-D2000/not-a-simd-lib/simd"
{{end}}{{range .Funcs}}
// {{.Name}} applies the builtin {{.Op}} operation lane-wise to {{.Type}} vectors.
func {{.Name}}(a, b {{$.Qual}}Vec[{{.Type}}]) {{$.Qual}}Vec[{{.Type}}] { return {{$.Qual}}{{.Generic}}(a, b) }
{{end}}`

// generate renders the named-wrapper file for cfg. Output is gofmt-clean
// and stable: two runs with the same config produce identical bytes.
func generate(cfg genConfig) ([]byte, error) {
	if len(cfg.Ops) == 0 {
		return nil, fmt.Errorf("no operations requested")
	}
	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("no lane types requested")
	}
	for _, op := range cfg.Ops {
		if !slices.Contains(knownOps, op) {
			return nil, fmt.Errorf("unknown operation %q (known: %s)", op, strings.Join(knownOps, ", "))
		}
	}
	for _, typ := range cfg.Types {
		if !slices.Contains(knownTypes, typ) {
			return nil, fmt.Errorf("unknown lane type %q (known: %s)", typ, strings.Join(knownTypes, ", "))
		}
	}

	caser := cases.Title(language.English)
	data := templateData{
		Args: fmt.Sprintf("-ops %s -types %s", strings.Join(cfg.Ops, ","), strings.Join(cfg.Types, ",")),
		Pkg:  cfg.Pkg,
	}
	if cfg.Pkg != "simd" {
		data.Qual = "simd."
	}
	for _, typ := range cfg.Types {
		for _, op := range cfg.Ops {
			data.Funcs = append(data.Funcs, namedFunc{
				Name:    caser.String(op) + caser.String(typ),
				Op:      op,
				Generic: caser.String(op),
				Type:    typ,
			})
		}
	}

	tmpl, err := template.New("ops").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	// imports.Process both gofmt-formats the output and fixes up the simd
	// import when generating into a foreign package.
	formatted, err := imports.Process("z_ops_named.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}
