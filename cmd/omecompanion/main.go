package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"omecompanion/pkg/companion"
	"omecompanion/pkg/config"
	"omecompanion/pkg/ome"
	"omecompanion/pkg/tiffmeta"
)

// defaultConfigPath is where concat looks for defaults unless -config is given.
const defaultConfigPath = "omecompanion.yaml"

func main() {
	log.SetFlags(0)
	log.SetPrefix("omecompanion: ")

	if len(os.Args) > 1 && os.Args[1] == "concat" {
		runConcat(os.Args[2:])
		return
	}
	runShow(os.Args[1:])
}

// runShow extracts the embedded OME-XML from a TIFF and pretty-prints it to
// stdout without interpreting it.
func runShow(args []string) {
	fs := flag.NewFlagSet("omecompanion", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  omecompanion <file.ome.tiff>")
		fmt.Fprintln(os.Stderr, "      Pretty-print the embedded OME-XML metadata.")
		fmt.Fprintln(os.Stderr, "  omecompanion concat [flags] <file.ome.tiff>")
		fmt.Fprintln(os.Stderr, "      Rewrite the metadata as a multi-file companion document.")
		fmt.Fprintln(os.Stderr, "      Run 'omecompanion concat -h' for flags.")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	xmlText, err := tiffmeta.ImageDescription(fs.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}
	pretty, err := ome.Reindent([]byte(xmlText))
	if err != nil {
		log.Fatalf("formatting metadata: %v", err)
	}
	os.Stdout.Write(pretty)
}

// runConcat applies the companion transform: it reads the embedded metadata,
// rewrites it for the target slice stack, and prints the result to stdout.
func runConcat(args []string) {
	defaults := config.DefaultConfig()

	fs := flag.NewFlagSet("omecompanion concat", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "YAML config file with default settings")
	sizeZ := fs.Int("size-z", 0, "Number of slice files the volume is split into (1-999, required)")
	physZ := fs.Float64("physical-size-z", defaults.Companion.PhysicalSizeZ, "Physical distance between consecutive slices")
	physZUnit := fs.String("physical-size-z-unit", defaults.Companion.PhysicalSizeZUnit, "Unit for -physical-size-z")
	template := fs.String("filename-template", defaults.Companion.FilenameTemplate, "Per-slice filename with a {z} placeholder (required)")
	verbose := fs.Bool("verbose", defaults.Output.Verbose, "Dump the parsed document to stderr before transforming")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	// Config file values fill in any flag the user did not set explicitly.
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["physical-size-z"] {
		*physZ = cfg.Companion.PhysicalSizeZ
	}
	if !set["physical-size-z-unit"] {
		*physZUnit = cfg.Companion.PhysicalSizeZUnit
	}
	if !set["filename-template"] {
		*template = cfg.Companion.FilenameTemplate
	}
	if !set["verbose"] {
		*verbose = cfg.Output.Verbose
	}

	if *sizeZ < 1 {
		log.Fatalf("-size-z is required and must be at least 1")
	}
	if *template == "" {
		log.Fatalf("-filename-template is required (set it on the command line or in %s)", *configPath)
	}

	xmlText, err := tiffmeta.ImageDescription(fs.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}
	doc, err := ome.Parse([]byte(xmlText))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *verbose {
		spew.Fdump(os.Stderr, doc)
	}

	err = companion.Transform(doc, companion.StackConfig{
		SizeZ:             *sizeZ,
		PhysicalSizeZ:     *physZ,
		PhysicalSizeZUnit: *physZUnit,
		FilenameTemplate:  *template,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	out, err := ome.Marshal(doc)
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Stdout.Write(out)
}
