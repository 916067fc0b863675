// Command unitgen generates catalog.go, the dimension markers and named
// units of package si, from a TOML catalog description.
//
// Usage:
//
//	unitgen [-toml catalog.toml] [-out catalog.go] [-v]
//
// Without -toml it renders the embedded units.toml.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

//go:embed units.toml
var embeddedCatalog []byte

type catalog struct {
	Dimensions []dimension `toml:"dimension"`
	Units      []unitDef   `toml:"unit"`
}

type dimension struct {
	Name string `toml:"name"`
	// Doc completes the sentence "<Name> is the dimension of <Doc>."
	Doc string `toml:"doc"`
	// Exponents of the seven base dimensions in canonical order:
	// time, length, mass, current, temperature, amount, luminous.
	Exponents []int `toml:"exponents"`
}

type unitDef struct {
	Name   string `toml:"name"`
	Symbol string `toml:"symbol"`
	// Dimension names the marker of a base unit. Derived units (Parent
	// set) inherit the parent's dimension and may omit it.
	Dimension string `toml:"dimension"`
	// Parent, Multiplier and Offset define a derived unit, rendered as
	// Parent.Derive(Symbol, Multiplier, Offset). See Unit.Derive for how
	// the chain composes down to the coherent base unit.
	Parent     string  `toml:"parent"`
	Multiplier float64 `toml:"multiplier"`
	Offset     float64 `toml:"offset"`
}

func main() {
	outPath := flag.String("out", "catalog.go", "output file path")
	tomlPath := flag.String("toml", "", "catalog file overriding the embedded units.toml")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	data := embeddedCatalog
	if *tomlPath != "" {
		var err error
		data, err = os.ReadFile(*tomlPath)
		if err != nil {
			fatal("reading catalog", err)
		}
	}
	cat, err := loadCatalog(data)
	if err != nil {
		fatal("loading catalog", err)
	}
	slog.Debug("catalog loaded", "dimensions", len(cat.Dimensions), "units", len(cat.Units))

	src, err := render(cat)
	if err != nil {
		fatal("rendering catalog", err)
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fatal("writing output", err)
	}
	slog.Info("catalog generated", "path", *outPath, "bytes", len(src))
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

// loadCatalog parses and validates a TOML catalog description.
func loadCatalog(data []byte) (*catalog, error) {
	var cat catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog TOML: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *catalog) validate() error {
	names := append(
		lo.Map(c.Dimensions, func(d dimension, _ int) string { return d.Name }),
		lo.Map(c.Units, func(u unitDef, _ int) string { return u.Name })...,
	)
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("duplicate catalog names: %v", dups)
	}
	for _, name := range names {
		if name == "" || name[0] < 'A' || name[0] > 'Z' {
			return fmt.Errorf("catalog name %q is not an exported Go identifier", name)
		}
	}
	dims := lo.KeyBy(c.Dimensions, func(d dimension) string { return d.Name })
	for _, d := range c.Dimensions {
		if len(d.Exponents) != 7 {
			return fmt.Errorf("dimension %q: want 7 exponents, have %d", d.Name, len(d.Exponents))
		}
	}
	units := lo.KeyBy(c.Units, func(u unitDef) string { return u.Name })
	for _, u := range c.Units {
		if u.Symbol == "" {
			return fmt.Errorf("unit %q: missing symbol", u.Name)
		}
		if u.Parent == "" {
			if u.Dimension == "" {
				return fmt.Errorf("unit %q: base unit needs a dimension", u.Name)
			}
			if _, ok := dims[u.Dimension]; !ok {
				return fmt.Errorf("unit %q: unknown dimension %q", u.Name, u.Dimension)
			}
			if u.Multiplier != 0 || u.Offset != 0 {
				return fmt.Errorf("unit %q: multiplier and offset require a parent", u.Name)
			}
			continue
		}
		if u.Multiplier == 0 {
			return fmt.Errorf("unit %q: derived unit needs a nonzero multiplier", u.Name)
		}
		if u.Multiplier == 1 && u.Offset == 0 {
			return fmt.Errorf("unit %q: degenerate derivation of %q (multiplier 1, offset 0)", u.Name, u.Parent)
		}
		root, err := c.rootDimension(u, units)
		if err != nil {
			return err
		}
		if u.Dimension != "" && u.Dimension != root {
			return fmt.Errorf("unit %q: dimension %q does not match parent chain dimension %q", u.Name, u.Dimension, root)
		}
	}
	return nil
}

// rootDimension walks u's parent chain up to its base unit's dimension.
func (c *catalog) rootDimension(u unitDef, units map[string]unitDef) (string, error) {
	seen := make(map[string]bool)
	for u.Parent != "" {
		if seen[u.Name] {
			return "", fmt.Errorf("unit %q: parent cycle", u.Name)
		}
		seen[u.Name] = true
		parent, ok := units[u.Parent]
		if !ok {
			return "", fmt.Errorf("unit %q: unknown parent %q", u.Name, u.Parent)
		}
		u = parent
	}
	return u.Dimension, nil
}

// render emits the catalog as gofmt-formatted Go source: one marker type
// per dimension and one var per unit, grouped by dimension in catalog
// order.
func render(c *catalog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by unitgen from units.toml; DO NOT EDIT.\n\n")
	buf.WriteString("package si\n\n")
	buf.WriteString("// Dimension markers of the SI catalog, one per distinct dimension\n")
	buf.WriteString("// vector. See Base for how markers seal the typed layer.\n")
	for _, d := range c.Dimensions {
		fmt.Fprintf(&buf, "\n// %s is the dimension of %s.\n", d.Name, d.Doc)
		fmt.Fprintf(&buf, "type %s struct{}\n\n", d.Name)
		fmt.Fprintf(&buf, "func (%s) Dim() Dim { return NewDim(%s) }\n\n", d.Name, joinInts(d.Exponents))
		fmt.Fprintf(&buf, "func (%s) base() {}\n", d.Name)
	}
	units := lo.KeyBy(c.Units, func(u unitDef) string { return u.Name })
	grouped := lo.GroupBy(c.Units, func(u unitDef) string {
		root, _ := c.rootDimension(u, units)
		return root
	})
	for _, d := range c.Dimensions {
		group := grouped[d.Name]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\n// Units of %s.\n", d.Name)
		for _, u := range group {
			if u.Parent == "" {
				fmt.Fprintf(&buf, "var %s = BaseUnit[%s](%q)\n", u.Name, d.Name, u.Symbol)
			} else {
				fmt.Fprintf(&buf, "var %s = %s.Derive(%q, %s, %s)\n",
					u.Name, u.Parent, u.Symbol, fmtFloat(u.Multiplier), fmtFloat(u.Offset))
			}
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated catalog: %w", err)
	}
	return src, nil
}

func joinInts(xs []int) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	return sb.String()
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
