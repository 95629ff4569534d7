// Command packctl selects packaging for a product from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/packaging-selector/internal/catalog"
	"github.com/eugenenazirov/packaging-selector/internal/packaging"
)

const (
	exitOK = iota
	exitError
	exitNoFit
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("packctl", "Select standard packaging for a product")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(nil)
	catalogFile := app.Flag("catalog", "Path to a YAML packaging catalog (defaults to the built-in table)").String()

	selectCmd := app.Command("select", "Select packaging for one unit or a batch of identical units")
	depth := selectCmd.Flag("depth", "Item depth in mm").Required().Float64()
	width := selectCmd.Flag("width", "Item width in mm").Required().Float64()
	height := selectCmd.Flag("height", "Item height in mm").Required().Float64()
	weight := selectCmd.Flag("weight", "Item weight in g").Default("0").Float64()
	quantity := selectCmd.Flag("quantity", "Number of identical units").Short('q').Default("1").Int()

	catalogCmd := app.Command("catalog", "List the packaging catalog")

	command, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "packctl: %v\n", err)
		return exitError
	}

	source, err := catalog.Load(*catalogFile)
	if err != nil {
		fmt.Fprintf(stderr, "packctl: %v\n", err)
		return exitError
	}

	switch command {
	case selectCmd.FullCommand():
		item := packaging.Dimensions{Depth: *depth, Width: *width, Height: *height, Weight: *weight}
		return runSelect(packaging.New(source.Options()), item, *quantity, stdout, stderr)
	case catalogCmd.FullCommand():
		return runCatalog(source.Options(), stdout)
	default:
		app.Usage(args)
		return exitError
	}
}

func runSelect(selector packaging.Selector, item packaging.Dimensions, quantity int, stdout, stderr io.Writer) int {
	if err := packaging.Validate(item, quantity); err != nil {
		fmt.Fprintf(stderr, "packctl: %v\n", err)
		return exitError
	}

	result, ok := selector.SelectForBatch(item, quantity)
	if !ok {
		fmt.Fprintln(stderr, "packctl: no packaging fits")
		return exitNoFit
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(stderr, "packctl: %v\n", err)
		return exitError
	}
	return exitOK
}

func runCatalog(options []packaging.Option, stdout io.Writer) int {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tLENGTH\tWIDTH\tHEIGHT\tTARE")
	for _, opt := range options {
		height := "-"
		if opt.Kind == packaging.KindBox {
			height = fmt.Sprintf("%g", opt.Height)
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%s\t%g\n", opt.Name, opt.Kind, opt.Length, opt.Width, height, opt.TareWeight)
	}
	_ = tw.Flush()
	return exitOK
}
