// Package templates provides embedded templates for machine description
// scaffolding.
package templates

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
	"text/template"
)

//go:embed machines/*.tmpl
var machineTemplates embed.FS

// MachineData contains the data used to render a machine description.
type MachineData struct {
	// Title is printed in the description header comment.
	Title    string
	Alphabet string
	Slots    int
	Pawls    int
	Rotors   []RotorData
}

// RotorData describes one rotor of a preset pool.
type RotorData struct {
	Name    string
	Kind    string
	Notches string
	Cycles  string
}

// ConfType returns the rotor type token of the text format.
func (r RotorData) ConfType() string {
	switch r.Kind {
	case "moving":
		return "M" + r.Notches
	case "fixed":
		return "N"
	default:
		return "R"
	}
}

// Wheels of the three-rotor service machines. The naval machines added VI
// to VIII, which carry two notches.
var serviceRotors = []RotorData{
	{Name: "I", Kind: "moving", Notches: "Q", Cycles: "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"},
	{Name: "II", Kind: "moving", Notches: "E", Cycles: "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)"},
	{Name: "III", Kind: "moving", Notches: "V", Cycles: "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"},
	{Name: "IV", Kind: "moving", Notches: "J", Cycles: "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"},
	{Name: "V", Kind: "moving", Notches: "Z", Cycles: "(AVOLDRWFIUQ) (BZKSMNHYC) (EGTJPX)"},
	{Name: "VI", Kind: "moving", Notches: "ZM", Cycles: "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)"},
	{Name: "VII", Kind: "moving", Notches: "ZM", Cycles: "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)"},
	{Name: "VIII", Kind: "moving", Notches: "ZM", Cycles: "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)"},
}

var presets = map[string]MachineData{
	"m3": {
		Title:    "Enigma M3",
		Alphabet: "A-Z",
		Slots:    4,
		Pawls:    3,
		Rotors: append(slices.Clone(serviceRotors),
			RotorData{Name: "B", Kind: "reflector",
				Cycles: "(AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ) (VW)"},
			RotorData{Name: "C", Kind: "reflector",
				Cycles: "(AF) (BV) (CP) (DJ) (EI) (GO) (HY) (KR) (LZ) (MX) (NW) (QT) (SU)"},
		),
	},
	"m4": {
		Title:    "Enigma M4 (naval)",
		Alphabet: "A-Z",
		Slots:    5,
		Pawls:    3,
		Rotors: append(slices.Clone(serviceRotors),
			RotorData{Name: "Beta", Kind: "fixed", Cycles: "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
			RotorData{Name: "Gamma", Kind: "fixed", Cycles: "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"},
			RotorData{Name: "B", Kind: "reflector",
				Cycles: "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
			RotorData{Name: "C", Kind: "reflector",
				Cycles: "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)"},
		),
	},
}

// Presets returns the names of the built-in machines, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns the data of a built-in machine.
func Preset(name string) (MachineData, error) {
	data, ok := presets[strings.ToLower(name)]
	if !ok {
		return MachineData{}, fmt.Errorf("unknown preset: %s (supported: %v)", name, Presets())
	}
	data.Rotors = slices.Clone(data.Rotors)
	return data, nil
}

// MachineTemplates returns the parsed machine description templates.
func MachineTemplates() (*template.Template, error) {
	tmpl := template.New("")

	err := fs.WalkDir(machineTemplates, "machines", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := machineTemplates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		// Use filename without .tmpl as template name
		name := strings.TrimPrefix(path, "machines/")
		name = strings.TrimSuffix(name, ".tmpl")

		_, err = tmpl.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	return tmpl, nil
}

// TemplateFormats returns the description formats that can be rendered.
func TemplateFormats() []string {
	return []string{"conf", "yaml"}
}

// Render writes data as a machine description in format.
func Render(w io.Writer, format string, data MachineData) error {
	if !slices.Contains(TemplateFormats(), format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, TemplateFormats())
	}

	tmpl, err := MachineTemplates()
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, format, data); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	return nil
}
