/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

// assocmap resolves the association declarations of a YAML manifest and
// prints the resulting proxy mapping: target type, storage strategy, proxy
// kind and, for linked associations, the link tag and target bucket.
//
// Manifest format:
//
//	owner: Customer
//	types:
//	  - name: Address
//	    embeddable: true
//	  - name: Account
//	    bucket: accounts
//	associations:
//	  - one: billing_address
//	    class_name: Address
//	  - many: addresses
//	  - one: account
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/associations"
	"github.com/halorgium/ripple/registry"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

type manifest struct {
	Owner        string          `yaml:"owner"`
	Types        []manifestType  `yaml:"types"`
	Associations []manifestAssoc `yaml:"associations"`
}

type manifestType struct {
	Name       string `yaml:"name"`
	Bucket     string `yaml:"bucket"`
	Embeddable bool   `yaml:"embeddable"`
}

type manifestAssoc struct {
	One       string `yaml:"one"`
	Many      string `yaml:"many"`
	ClassName string `yaml:"class_name"`
	Using     string `yaml:"using"`
}

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := ripple.GetVersionInfo()
		fmt.Printf("ripple assocmap version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <manifest.yaml>\n", os.Args[0])
		os.Exit(2)
	}

	if err := run(os.Stdout, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "assocmap: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse manifest: %w", err)
	}

	reg, err := buildRegistry(&m)
	if err != nil {
		return err
	}

	if m.Owner != "" {
		fmt.Fprintf(w, "Associations of %s:\n\n", m.Owner)
	}
	return printMapping(w, reg)
}

func buildRegistry(m *manifest) (*associations.Registry, error) {
	types := registry.NewTypeRegistry()
	for _, t := range m.Types {
		d := &registry.Descriptor{
			Name:       t.Name,
			Bucket:     t.Bucket,
			Embeddable: t.Embeddable,
		}
		if err := types.Register(d); err != nil {
			return nil, err
		}
	}

	b := associations.NewBuilder(types)
	for i, a := range m.Associations {
		opts := associations.Options{ClassName: a.ClassName}
		if a.Using != "" {
			using, err := parseStrategy(a.Using)
			if err != nil {
				return nil, fmt.Errorf("association %d: %w", i, err)
			}
			opts.Using = using
		}

		switch {
		case a.One != "" && a.Many != "":
			return nil, fmt.Errorf("association %d declares both one and many", i)
		case a.One != "":
			b.One(a.One, opts)
		case a.Many != "":
			b.Many(a.Many, opts)
		default:
			return nil, fmt.Errorf("association %d declares neither one nor many", i)
		}
	}
	return b.Build(), nil
}

func parseStrategy(s string) (associations.StorageStrategy, error) {
	switch s {
	case "embedded":
		return associations.StorageEmbedded, nil
	case "linked":
		return associations.StorageLinked, nil
	default:
		return associations.StorageAuto, fmt.Errorf("unknown storage strategy %q", s)
	}
}

func printMapping(w io.Writer, reg *associations.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCARDINALITY\tTARGET\tSTRATEGY\tPROXY\tLINK")

	for _, a := range reg.All() {
		strategy, err := a.Strategy()
		if err != nil {
			return fmt.Errorf("association %q: %w", a.Name(), err)
		}
		kind, err := a.Kind()
		if err != nil {
			return fmt.Errorf("association %q: %w", a.Name(), err)
		}

		link := "-"
		if strategy == associations.StorageLinked {
			bucket, err := a.BucketAddress()
			if err != nil {
				return err
			}
			link = fmt.Sprintf("%s -> %s", a.LinkTag(), bucket)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Name(), a.Cardinality(), a.TargetTypeName(), strategy, kind, link)
	}
	return tw.Flush()
}
