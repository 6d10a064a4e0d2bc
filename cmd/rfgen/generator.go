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

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// Tier describes one kernel tier and the lane type it uses per sample kind.
type Tier struct {
	Name  string            // flicker.Tier constant
	Lanes map[string]string // sample type -> lanes type; empty for scalar
}

// Kind describes one sample kind.
type Kind struct {
	Type       string // Go element type
	Const      string // plane.SampleKind constant
	Symmetric  string // scalar symmetric row kernel
	Aggressive string // scalar aggressive row kernel
}

var tiers = []Tier{
	{Name: "TierScalar"},
	{Name: "TierA", Lanes: map[string]string{
		"uint8": "Uint8x16", "uint16": "Uint16x8", "float32": "Float32x4",
	}},
	{Name: "TierB", Lanes: map[string]string{
		"uint8": "Uint8x32", "uint16": "Uint16x16", "float32": "Float32x8",
	}},
}

var kinds = []Kind{
	{Type: "uint8", Const: "Uint8", Symmetric: "symmetricInt[uint8]", Aggressive: "aggressiveInt[uint8]"},
	{Type: "uint16", Const: "Uint16", Symmetric: "symmetricInt[uint16]", Aggressive: "aggressiveInt[uint16]"},
	{Type: "float32", Const: "Float32", Symmetric: "symmetricFloat", Aggressive: "aggressiveFloat"},
}

// Entry is one line of the generated table.
type Entry struct {
	Tier       string
	Strength   int
	Aggressive bool
	Kind       string
	Type       string
	Row        string // expression of type rowFunc[Type]
}

// Entries returns the table entries in generation order.
func Entries() []Entry {
	var out []Entry
	for _, t := range tiers {
		for strength := 1; strength <= 3; strength++ {
			for _, aggressive := range []bool{false, true} {
				for _, k := range kinds {
					scalar, vec := k.Symmetric, "symmetricVec"
					if aggressive {
						scalar, vec = k.Aggressive, "aggressiveVec"
					}
					row := scalar
					if lt, ok := t.Lanes[k.Type]; ok {
						row = fmt.Sprintf("%s[%s, lanes.%s](%s)", vec, k.Type, lt, scalar)
					}
					out = append(out, Entry{
						Tier:       t.Name,
						Strength:   strength,
						Aggressive: aggressive,
						Kind:       k.Const,
						Type:       k.Type,
						Row:        row,
					})
				}
			}
		}
	}
	return out
}

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by rfgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/ajroetker/go-reduceflicker/lanes"
	"github.com/ajroetker/go-reduceflicker/plane"
)

// kernels maps every supported key to its kernel.
var kernels = map[Key]kernelFunc{
{{- range .Entries}}
	{Tier: {{.Tier}}, Strength: {{.Strength}}, Aggressive: {{.Aggressive}}, Kind: plane.{{.Kind}}}: planeKernel[{{.Type}}]({{.Strength}}, {{.Row}}),
{{- end}}
}
`))

// Generate renders the table for package pkg. filename is only used by the
// import fixer.
func Generate(pkg, filename string) ([]byte, error) {
	var buf bytes.Buffer
	err := tableTemplate.Execute(&buf, struct {
		Package string
		Entries []Entry
	}{pkg, Entries()})
	if err != nil {
		return nil, err
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated table: %w", err)
	}
	return src, nil
}
