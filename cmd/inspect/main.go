package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/classmeta/annotation"
)

func main() {
	var (
		dumpFile    = flag.String("dump", "", "Path to annotation dump file (.json or .cbor)")
		nameFilter  = flag.String("name", "", "Only show annotations with this name")
		list        = flag.Bool("list", false, "List distinct annotation names and exit")
		output      = flag.String("o", "text", "Output format: text, json or yaml")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *dumpFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -dump <file> [-name fqcn] [-o text|json|yaml]")
		fmt.Fprintln(os.Stderr, "       inspect -dump <file> -list")
		fmt.Fprintln(os.Stderr, "       inspect -dump <file> -i  (interactive mode)")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = dev
	}
	defer logger.Sync()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*dumpFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(logger, *dumpFile, *nameFilter, *output, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, dumpFile, nameFilter, output string, listOnly bool) error {
	instances, err := loadDump(dumpFile)
	if err != nil {
		return err
	}
	logger.Debug("loaded dump",
		zap.String("file", dumpFile),
		zap.Int("instances", len(instances)))

	if nameFilter != "" {
		var kept []*annotation.Instance
		for _, inst := range instances {
			if inst != nil && inst.Name == nameFilter {
				kept = append(kept, inst)
			}
		}
		logger.Debug("filtered by name",
			zap.String("name", nameFilter),
			zap.Int("kept", len(kept)))
		instances = kept
	}

	if listOnly {
		for _, name := range annotation.UniqueNamesSorted(instances) {
			fmt.Println(name)
		}
		return nil
	}

	switch output {
	case "text":
		for _, inst := range instances {
			if inst != nil {
				fmt.Println(inst)
			}
		}
	case "json":
		data, err := annotation.EncodeJSON(instances)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("indent: %w", err)
		}
		fmt.Println(buf.String())
	case "yaml":
		data, err := annotation.EncodeJSON(instances)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("reshape: %w", err)
		}
		out, err := yaml.Marshal(tree)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	return nil
}

func loadDump(path string) ([]*annotation.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if strings.HasSuffix(path, ".cbor") {
		instances, err := annotation.DecodeCBOR(data)
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return instances, nil
	}
	instances, err := annotation.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return instances, nil
}
