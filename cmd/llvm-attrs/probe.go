package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML config file.
type Config struct {
	// Library overrides the shared library search.
	Library string `yaml:"library"`
	// Names are probed in addition to the builtin list.
	Names []string `yaml:"names"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

type kindEntry struct {
	Name   string
	KindID uint32
}

// probe resolves each name through lookup, deduplicates, and sorts by kind
// id. Kind id 0 means "not a builtin"; those entries are dropped unless
// includeUnknown is set.
func probe(lookup func(string) uint32, names []string, includeUnknown bool) []kindEntry {
	seen := make(map[string]bool, len(names))
	var entries []kindEntry
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		id := lookup(name)
		if id == 0 && !includeUnknown {
			continue
		}
		entries = append(entries, kindEntry{Name: name, KindID: id})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].KindID != entries[j].KindID {
			return entries[i].KindID < entries[j].KindID
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// tableWriter prints aligned columns on a terminal and plain TSV when the
// output is piped.
type tableWriter struct {
	w  io.Writer
	tw *tabwriter.Writer
}

func newTableWriter(w io.Writer, isTerminal bool) *tableWriter {
	t := &tableWriter{w: w}
	if isTerminal {
		t.tw = tabwriter.NewWriter(w, 2, 8, 2, ' ', 0)
	}
	return t
}

func (t *tableWriter) row(name string, kindID uint32) {
	if t.tw != nil {
		fmt.Fprintf(t.tw, "%s\t%d\n", name, kindID)
		return
	}
	fmt.Fprintf(t.w, "%s\t%d\n", name, kindID)
}

func (t *tableWriter) flush() error {
	if t.tw != nil {
		return t.tw.Flush()
	}
	return nil
}
