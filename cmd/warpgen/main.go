// Copyright 2025 go-warp Authors
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

// warpgen generates the per-format descriptor table of a primitives package
// from a YAML manifest.
//
// Usage:
//
//	//go:generate go run ../../../cmd/warpgen --in descriptors.yaml --out zz_descriptors.go
//
// With --check the output file is compared against what would be generated
// and the command fails if it is stale.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("warpgen: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		in      string
		out     string
		check   bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "warpgen",
		Short:         "Generate a primitive descriptor table from a YAML manifest",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(in)
			if err != nil {
				return err
			}
			src, err := generate(m, filepath.Base(in), filepath.Base(out))
			if err != nil {
				return err
			}
			if check {
				cur, err := os.ReadFile(out)
				if err != nil {
					return fmt.Errorf("reading %s: %w", out, err)
				}
				if !bytes.Equal(cur, src) {
					return fmt.Errorf("%s is stale, run go generate", out)
				}
				return nil
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if verbose {
				log.Printf("wrote %s: %d ops, %d descriptors", out, len(m.Ops), len(m.descriptors()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "descriptors.yaml", "manifest to read")
	cmd.Flags().StringVar(&out, "out", "zz_descriptors.go", "Go file to write")
	cmd.Flags().BoolVar(&check, "check", false, "fail if the output is not up to date instead of writing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log what was written")
	return cmd
}
