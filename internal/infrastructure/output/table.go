package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/enigma/internal/domain/entities"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

// MachineView is the printable form of a machine and its rotor pool.
type MachineView struct {
	Source   string      `json:"source,omitempty" yaml:"source,omitempty"`
	Alphabet string      `json:"alphabet" yaml:"alphabet"`
	Rotors   []RotorView `json:"rotors" yaml:"rotors"`
	Slots    int         `json:"slots" yaml:"slots"`
	Pawls    int         `json:"pawls" yaml:"pawls"`
}

// RotorView describes one pool rotor.
type RotorView struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
	Notches string `json:"notches,omitempty" yaml:"notches,omitempty"`
	Cycles  string `json:"cycles" yaml:"cycles"`
}

// NewMachineView describes m.
func NewMachineView(source string, m *entities.Machine) *MachineView {
	view := &MachineView{
		Source:   source,
		Alphabet: m.Alphabet().String(),
		Slots:    m.NumRotors(),
		Pawls:    m.NumPawls(),
	}
	for _, r := range m.Pool() {
		view.Rotors = append(view.Rotors, RotorView{
			Name:    r.Name(),
			Kind:    r.Kind().String(),
			Notches: r.Notches(),
			Cycles:  r.Permutation().Cycles(),
		})
	}
	return view
}

// MachineFormatter renders a machine view.
type MachineFormatter interface {
	Format(view *MachineView) error
}

// TableFormatter prints a machine as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the machine as a table.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) Format(view *MachineView) error {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	if view.Source != "" {
		fmt.Fprintf(f.writer, "Machine: %s\n", f.colorize(view.Source, colorBold))
	}
	fmt.Fprintf(f.writer, "Alphabet: %s\n", view.Alphabet)
	fmt.Fprintf(f.writer, "Slots: %d  Pawls: %d\n", view.Slots, view.Pawls)
	fmt.Fprintln(f.writer)

	if len(view.Rotors) == 0 {
		fmt.Fprintln(f.writer, "No rotors defined.")
		return nil
	}

	tw := tabwriter.NewWriter(f.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tNOTCHES\tCYCLES")
	for _, r := range view.Rotors {
		notches := r.Notches
		if notches == "" {
			notches = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Kind, notches, r.Cycles)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "%s rotors\n", f.colorize(fmt.Sprint(len(view.Rotors)), colorCyan))
	return nil
}

// JSONFormatter prints a machine as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{writer: w, indent: indent}
}

// Format writes the machine as JSON.
func (f *JSONFormatter) Format(view *MachineView) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(view)
}

// YAMLFormatter prints a machine as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the machine as YAML.
func (f *YAMLFormatter) Format(view *MachineView) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(view); err != nil {
		return err
	}

	return encoder.Close()
}
