package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const warpImport = "github.com/ajroetker/go-warp/warp"

// opIdent turns a snake_case op name into its exported constant name.
func opIdent(name string) string {
	title := cases.Title(language.English)
	var sb strings.Builder
	sb.WriteString("Op")
	for _, part := range strings.Split(name, "_") {
		sb.WriteString(title.String(part))
	}
	return sb.String()
}

func archIdent(a int) string {
	return fmt.Sprintf("warp.ArchSM%d", a/10)
}

// generate renders the Go source for m. source names the manifest in the
// header; filename is used by the formatter.
func generate(m *manifest, source, filename string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by warpgen from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", m.Package)
	fmt.Fprintf(&buf, "import %q\n\n", warpImport)

	buf.WriteString("const (\n")
	for i, op := range m.Ops {
		if i == 0 {
			fmt.Fprintf(&buf, "\t%s Op = iota\n", opIdent(op.Name))
			continue
		}
		fmt.Fprintf(&buf, "\t%s\n", opIdent(op.Name))
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(&buf, "const numOps = %d\n\n", len(m.Ops))

	buf.WriteString("var opNames = [numOps]string{\n")
	for _, op := range m.Ops {
		fmt.Fprintf(&buf, "\t%q,\n", op.Name)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var descriptors = [...]Descriptor{\n")
	prev := ""
	for _, d := range m.descriptors() {
		if d.op != prev {
			if prev != "" {
				buf.WriteString("\n")
			}
			fmt.Fprintf(&buf, "\t// %s\n", d.op)
			prev = d.op
		}
		fmt.Fprintf(&buf, "\t{Op: %s, Format: warp.%s, Algorithm: %s", opIdent(d.op), formatIdents[d.format], d.algorithm)
		if d.arch != 0 {
			fmt.Fprintf(&buf, ", MinArch: %s", archIdent(int(d.arch)))
		}
		if d.toolchain != 0 {
			fmt.Fprintf(&buf, ", MinToolchain: %d", d.toolchain)
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
