package prompt

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
)

type renderFunc func(c *Compositer, d domain.AssetDescriptor) string

// renderers has one entry per asset kind.
var renderers = map[domain.AssetKind]renderFunc{
	domain.KindBaseShape:     (*Compositer).baseShape,
	domain.KindCategoryIcon:  (*Compositer).categoryIcon,
	domain.KindVariationIcon: (*Compositer).variationIcon,
	domain.KindCanvasLayer:   (*Compositer).canvasLayer,
}

// Compositer renders generation prompts from a Style.
type Compositer struct {
	style    Style
	preamble string
}

// NewCompositer precomputes the shared preamble for style.
func NewCompositer(style Style) *Compositer {
	return &Compositer{style: style, preamble: Preamble(style)}
}

// Style returns the style the compositer was built with.
func (c *Compositer) Style() Style { return c.style }

// Compose returns the full prompt for d. Unknown kinds yield the preamble only.
func (c *Compositer) Compose(d domain.AssetDescriptor) string {
	render, ok := renderers[d.Kind]
	if !ok {
		return c.preamble
	}
	return render(c, d)
}

// Preamble is the style block that opens every prompt.
func Preamble(s Style) string {
	return "Style: clean flat 2D vector-like illustration, consistent line weight, " +
		"no gradients, no shadows. " +
		fmt.Sprintf("Colors: bird fill %s, outline/stroke %s. ", s.fillColor, s.outlineColor) +
		fmt.Sprintf("Background: fill entire canvas with solid chroma key %s. ", s.chromaKey) +
		fmt.Sprintf("Do NOT use %s anywhere in the bird/markings. ", s.chromaKey) +
		fmt.Sprintf("Output: %s. ", s.output) +
		"Framing: do NOT crop, do NOT zoom, do NOT center the subject. Maintain absolute " +
		"positioning in the full canvas. " +
		"Negative/avoid: blurry, 3D, realistic, gradients, shadows, ghosting, faint outline " +
		"of full bird, extra body parts, smoke, partial opacity, cropped, zoomed, centered."
}

func (c *Compositer) background() string {
	return "Background must be solid chroma key " + c.style.chromaKey + "."
}

func (c *Compositer) baseShape(d domain.AssetDescriptor) string {
	return c.preamble + "\n" +
		fmt.Sprintf("Create the %s base silhouette/outline for a compositing canvas: ", d.ShapeID) +
		fmt.Sprintf("body fill color %s and outline color %s. ", c.style.fillColor, c.style.outlineColor) +
		"Side profile facing right, perched pose, wings folded. Full body visible. " +
		"This is the anchor layer. " + c.background()
}

func (c *Compositer) categoryIcon(d domain.AssetDescriptor) string {
	return c.preamble + "\n" +
		fmt.Sprintf("Create a simple monochrome UI category icon representing '%s' (bird field mark category). ", d.Area) +
		"Minimal, bold outline, centered, readable at small size. " + c.background()
}

func (c *Compositer) variationIcon(d domain.AssetDescriptor) string {
	var extra string
	if o, ok := c.style.Override(d.Area, d.Variant); ok && o.Icon != "" {
		extra = " " + c.style.expand(o.Icon)
	}
	return c.preamble + "\n" +
		fmt.Sprintf("Create a small UI variation icon for %s = %s. ", d.Area, d.Variant) +
		"Simple, bold, centered, readable at 60×60. " +
		"Flat colors only." + extra + " " + c.background()
}

func (c *Compositer) canvasLayer(d domain.AssetDescriptor) string {
	var extra string
	if o, ok := c.style.Override(d.Area, d.Variant); ok && o.Canvas != "" {
		extra = " " + c.style.expand(o.Canvas)
	}
	var rule string
	if r, ok := c.style.AreaRule(d.Area); ok {
		rule = c.style.expand(r)
	}

	var b strings.Builder
	b.WriteString(c.preamble)
	b.WriteString("\n")
	fmt.Fprintf(&b, "REFERENCE IMAGE PROVIDED: Use the attached %s base (%s) as the fixed coordinate frame.\n",
		d.ShapeID, domain.BaseShapeName(d.ShapeID))
	fmt.Fprintf(&b, "Task: generate a canvas layer ONLY for %s = %s.%s\n", d.Area, d.Variant, extra)
	b.WriteString("Placement: keep the changed pixels positioned exactly where they belong on the reference bird. ")
	b.WriteString("Do not move them, do not center them, do not zoom.\n")
	fmt.Fprintf(&b, "Background handling: every pixel NOT part of the intended %s layer must remain solid chroma key %s ",
		d.Area, c.style.chromaKey)
	b.WriteString("(no partial transparency). Do not draw faint outlines/ghosting of the rest of the bird.\n")
	b.WriteString(rule)
	return b.String()
}
