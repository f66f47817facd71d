// Command llvm-attrs prints the builtin enum attribute kind table of the
// LLVM shared library found on this system.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/lowerkit/llvm"
	"github.com/lowerkit/llvm/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "llvm-attrs: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	libPath := flag.String("lib", config.GetEnv("LLVM_LIBRARY", ""), "Path to the LLVM shared library (default: search)")
	configPath := flag.String("config", "", "YAML config with extra attribute names")
	showAll := flag.Bool("all", false, "Include names the library does not recognize")
	debug := flag.Bool("debug", config.GetEnvBool("LLVM_ATTRS_DEBUG", false), "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [name...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the builtin enum attribute kind table of the local LLVM library.\n")
		fmt.Fprintf(os.Stderr, "Extra names given as arguments are probed in addition to the builtin list.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s align sret noundef\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --lib /usr/lib/libLLVM.so.18\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	names := builtinNames
	lib := *libPath
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		names = append(names, cfg.Names...)
		if lib == "" {
			lib = cfg.Library
		}
	}
	names = append(names, flag.Args()...)

	if lib != "" {
		if err := llvm.LoadLibrary(lib); err != nil {
			return fmt.Errorf("load %s: %w", lib, err)
		}
	} else if err := llvm.Load(); err != nil {
		return err
	}

	entries := probe(llvm.AttributeKindID, names, *showAll)
	slog.Debug("probed attribute names", "names", len(names), "known", len(entries))

	out := newTableWriter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	for _, e := range entries {
		out.row(e.Name, e.KindID)
	}
	if err := out.flush(); err != nil {
		return err
	}

	fmt.Printf("last builtin kind id: %d\n", llvm.LastAttributeKindID())
	return nil
}
