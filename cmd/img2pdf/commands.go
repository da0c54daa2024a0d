package main

import (
	"fmt"
	"text/tabwriter"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
	"github.com/alnah/go-img2pdf/internal/yamlutil"
)

// runSizes prints the named page sizes in portrait orientation.
func runSizes(env *Environment) error {
	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWIDTH\tHEIGHT")
	for _, name := range img2pdf.PageSizeNames() {
		size, err := img2pdf.LookupPageSize(name, img2pdf.OrientationPortrait)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\n", name, size.Width, size.Height)
	}
	return tw.Flush()
}

// runConfig prints the default configuration as YAML.
func runConfig(env *Environment) error {
	data, err := yamlutil.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
