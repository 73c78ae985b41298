package prompt

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default palette shared by every prompt.
const (
	DefaultChromaKey    = "#FF00FF"
	DefaultFillColor    = "#cdcdcd"
	DefaultOutlineColor = "#707070"
	DefaultOutput       = "PNG, square 1024×1024 (or 2048×2048)"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Override is extra prompt text for one (area, variant) pair. Icon is appended
// to variation icon prompts, Canvas to canvas layer prompts; either may be empty.
type Override struct {
	Area    string `yaml:"area"`
	Variant string `yaml:"variant"`
	Icon    string `yaml:"icon,omitempty"`
	Canvas  string `yaml:"canvas,omitempty"`
}

type overrideKey struct {
	area, variant string
}

// Style holds the palette and exception tables used by the compositer. It is
// built once and never mutated; accessors return copies.
type Style struct {
	chromaKey    string
	fillColor    string
	outlineColor string
	output       string
	overrides    map[overrideKey]Override
	areaRules    map[string]string
}

var defaultOverrides = []Override{
	{
		Area:    "Beak",
		Variant: "Pale",
		Icon:    "Use off-white creamy ivory tone (similar to #F3E9D2), NOT pure white.",
		Canvas:  "Color must be off-white creamy ivory (similar to #F3E9D2), not pure white.",
	},
	{
		Area:    "Belly",
		Variant: "White",
		Icon:    "Use pure stark white (#FFFFFF).",
		Canvas:  "Color must be pure stark white (#FFFFFF), not ivory/pale.",
	},
	{
		Area:    "Back",
		Variant: "Streaked",
		Icon:    "Show a close-up feather patch with high-contrast streaks (clean repeated lines).",
	},
}

var defaultAreaRules = map[string]string{
	"Back": "Wings rule: this is Back (upper torso) ONLY. Do NOT draw or modify Wings/feather groups; " +
		"do NOT place patterns on the wing feathers. Keep all wing areas exactly as the base fill ({fill}) " +
		"or the chroma key background ({chroma_key}) if outside the bird silhouette. ",
}

// DefaultStyle returns the built-in palette and exception tables.
func DefaultStyle() Style {
	s := Style{
		chromaKey:    DefaultChromaKey,
		fillColor:    DefaultFillColor,
		outlineColor: DefaultOutlineColor,
		output:       DefaultOutput,
		overrides:    make(map[overrideKey]Override, len(defaultOverrides)),
		areaRules:    make(map[string]string, len(defaultAreaRules)),
	}
	for _, o := range defaultOverrides {
		s.overrides[overrideKey{o.Area, o.Variant}] = o
	}
	for area, rule := range defaultAreaRules {
		s.areaRules[area] = rule
	}
	return s
}

func (s Style) ChromaKey() string    { return s.chromaKey }
func (s Style) FillColor() string    { return s.fillColor }
func (s Style) OutlineColor() string { return s.outlineColor }
func (s Style) Output() string       { return s.output }

// Override returns the exception entry for (area, variant), if any.
func (s Style) Override(area, variant string) (Override, bool) {
	o, ok := s.overrides[overrideKey{area, variant}]
	return o, ok
}

// AreaRule returns the extra canvas rule for area, if any.
func (s Style) AreaRule(area string) (string, bool) {
	r, ok := s.areaRules[area]
	return r, ok
}

// Overrides lists the exception table sorted by area then variant.
func (s Style) Overrides() []Override {
	out := make([]Override, 0, len(s.overrides))
	for _, o := range s.overrides {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Area != out[j].Area {
			return out[i].Area < out[j].Area
		}
		return out[i].Variant < out[j].Variant
	})
	return out
}

// expand substitutes {chroma_key}, {fill} and {outline} in table text.
func (s Style) expand(text string) string {
	return strings.NewReplacer(
		"{chroma_key}", s.chromaKey,
		"{fill}", s.fillColor,
		"{outline}", s.outlineColor,
	).Replace(text)
}

// StyleFile is the YAML shape of a style override file.
type StyleFile struct {
	ChromaKey        string            `yaml:"chroma_key"`
	FillColor        string            `yaml:"fill_color"`
	OutlineColor     string            `yaml:"outline_color"`
	Output           string            `yaml:"output"`
	ReplaceOverrides bool              `yaml:"replace_overrides"`
	Overrides        []Override        `yaml:"overrides"`
	AreaRules        map[string]string `yaml:"area_rules"`
}

// LoadStyle reads a YAML style file and applies it over DefaultStyle.
// An empty path returns the defaults.
func LoadStyle(path string) (Style, error) {
	if path == "" {
		return DefaultStyle(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style file: %w", err)
	}
	return ParseStyle(data)
}

// ParseStyle decodes YAML style data and applies it over DefaultStyle.
func ParseStyle(data []byte) (Style, error) {
	var f StyleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Style{}, fmt.Errorf("parsing style file: %w", err)
	}
	if errs := ValidateStyleFile(&f); len(errs) > 0 {
		return Style{}, fmt.Errorf("invalid style file: %w", errors.Join(errs...))
	}
	s := f.apply(DefaultStyle())
	if strings.EqualFold(s.chromaKey, s.fillColor) || strings.EqualFold(s.chromaKey, s.outlineColor) {
		return Style{}, fmt.Errorf("invalid style file: chroma key %s must differ from the bird colors", s.chromaKey)
	}
	return s, nil
}

// ValidateStyleFile checks colors and override keys. Returns every problem found.
func ValidateStyleFile(f *StyleFile) []error {
	var errs []error
	for _, c := range []struct{ field, value string }{
		{"chroma_key", f.ChromaKey},
		{"fill_color", f.FillColor},
		{"outline_color", f.OutlineColor},
	} {
		if c.value != "" && !hexColor.MatchString(c.value) {
			errs = append(errs, fmt.Errorf("%s: invalid color %q (expected #RRGGBB)", c.field, c.value))
		}
	}
	for i, o := range f.Overrides {
		if o.Area == "" || o.Variant == "" {
			errs = append(errs, fmt.Errorf("overrides[%d]: area and variant are required", i))
		}
	}
	for area := range f.AreaRules {
		if area == "" {
			errs = append(errs, fmt.Errorf("area_rules: empty area key"))
		}
	}
	return errs
}

func (f *StyleFile) apply(s Style) Style {
	if f.ChromaKey != "" {
		s.chromaKey = f.ChromaKey
	}
	if f.FillColor != "" {
		s.fillColor = f.FillColor
	}
	if f.OutlineColor != "" {
		s.outlineColor = f.OutlineColor
	}
	if f.Output != "" {
		s.output = f.Output
	}
	if f.ReplaceOverrides {
		s.overrides = make(map[overrideKey]Override, len(f.Overrides))
	}
	for _, o := range f.Overrides {
		s.overrides[overrideKey{o.Area, o.Variant}] = o
	}
	for area, rule := range f.AreaRules {
		s.areaRules[area] = rule
	}
	return s
}
