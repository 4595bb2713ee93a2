package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ajroetker/go-warp/warp"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML description of a primitives package.
type manifest struct {
	Package string   `yaml:"package"`
	Ops     []opSpec `yaml:"ops"`
}

type opSpec struct {
	Name     string       `yaml:"name"`
	Native   []nativeSpec `yaml:"native"`
	Widened  []string     `yaml:"widened"`
	Promoted []string     `yaml:"promoted"`
}

type nativeSpec struct {
	Format    string `yaml:"format"`
	Arch      string `yaml:"arch"`
	Toolchain int    `yaml:"toolchain"`
}

// descriptor is one generated table row.
type descriptor struct {
	op        string
	format    warp.Format
	algorithm string
	arch      warp.Arch
	toolchain int
}

var opNameRE = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

var formatIdents = map[warp.Format]string{
	warp.FormatFloat32:        "FormatFloat32",
	warp.FormatFloat64:        "FormatFloat64",
	warp.FormatHalf:           "FormatHalf",
	warp.FormatBFloat16:       "FormatBFloat16",
	warp.FormatFloat8E4M3FN:   "FormatFloat8E4M3FN",
	warp.FormatFloat8E4M3FNUZ: "FormatFloat8E4M3FNUZ",
	warp.FormatFloat8E5M2:     "FormatFloat8E5M2",
	warp.FormatFloat8E5M2FNUZ: "FormatFloat8E5M2FNUZ",
}

var knownArches = []warp.Arch{warp.ArchSM50, warp.ArchSM53, warp.ArchSM70, warp.ArchSM80}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return parseManifest(data, path)
}

func parseManifest(data []byte, name string) (*manifest, error) {
	var m manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &m, nil
}

func (m *manifest) validate() error {
	if m.Package == "" {
		return errors.New("missing package")
	}
	if len(m.Ops) == 0 {
		return errors.New("no ops")
	}
	seen := make(map[string]bool)
	for _, op := range m.Ops {
		if !opNameRE.MatchString(op.Name) {
			return fmt.Errorf("invalid op name %q", op.Name)
		}
		if seen[op.Name] {
			return fmt.Errorf("duplicate op %q", op.Name)
		}
		seen[op.Name] = true

		special := make(map[warp.Format]bool)
		for _, n := range op.Native {
			f, err := reducedFormat(n.Format)
			if err != nil {
				return fmt.Errorf("op %s: %w", op.Name, err)
			}
			if special[f] {
				return fmt.Errorf("op %s: format %s listed twice", op.Name, f)
			}
			special[f] = true
			if _, err := parseArch(n.Arch); err != nil {
				return fmt.Errorf("op %s: %w", op.Name, err)
			}
			if n.Toolchain < 0 {
				return fmt.Errorf("op %s: negative toolchain", op.Name)
			}
		}
		for _, names := range [][]string{op.Widened, op.Promoted} {
			for _, name := range names {
				f, err := reducedFormat(name)
				if err != nil {
					return fmt.Errorf("op %s: %w", op.Name, err)
				}
				if special[f] {
					return fmt.Errorf("op %s: format %s listed twice", op.Name, f)
				}
				special[f] = true
			}
		}
	}
	return nil
}

// reducedFormat resolves a format name that may carry a non-forward
// algorithm. The wide formats always forward.
func reducedFormat(name string) (warp.Format, error) {
	for _, f := range warp.Formats() {
		if f.String() != name {
			continue
		}
		if f == warp.FormatFloat32 || f == warp.FormatFloat64 {
			return 0, fmt.Errorf("format %s always forwards", name)
		}
		return f, nil
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

func parseArch(name string) (warp.Arch, error) {
	for _, a := range knownArches {
		if strings.ReplaceAll(a.String(), "_", "") == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown arch %q", name)
}

// descriptors expands the manifest into one row per op and format, in
// manifest order and then format order.
func (m *manifest) descriptors() []descriptor {
	var out []descriptor
	for _, op := range m.Ops {
		for _, f := range warp.Formats() {
			d := descriptor{op: op.Name, format: f, algorithm: "AlgorithmRoundTrip"}
			if f == warp.FormatFloat32 || f == warp.FormatFloat64 {
				d.algorithm = "AlgorithmForward"
			}
			for _, n := range op.Native {
				if n.Format == f.String() {
					d.algorithm = "AlgorithmNative"
					d.arch, _ = parseArch(n.Arch)
					d.toolchain = n.Toolchain
				}
			}
			for _, name := range op.Widened {
				if name == f.String() {
					d.algorithm = "AlgorithmWidened"
				}
			}
			for _, name := range op.Promoted {
				if name == f.String() {
					d.algorithm = "AlgorithmPromoted"
				}
			}
			out = append(out, d)
		}
	}
	return out
}
