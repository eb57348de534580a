package autostyle

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// AutoOptions toggles the heuristics of the auto pass.
type AutoOptions struct {
	Background   bool
	BorderRadius bool
	Spacing      bool
	// Limit caps how many candidates become tweaks; nil means the policy default.
	Limit *int
}

// DefaultAutoOptions enables every heuristic.
func DefaultAutoOptions() AutoOptions {
	return AutoOptions{Background: true, BorderRadius: true, Spacing: true}
}

// Candidate is a scored element.
type Candidate struct {
	Element Element
	Styles  entity.Declarations
	Score   float64
}

var (
	radiusProps = []string{
		"border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius",
	}
	marginProps  = []string{"margin-top", "margin-right", "margin-bottom", "margin-left"}
	paddingProps = []string{"padding-top", "padding-right", "padding-bottom", "padding-left"}
)

func (o AutoOptions) styleProps() []string {
	props := []string{}
	if o.Background {
		props = append(props, "background-image", "background-color")
	}
	if o.BorderRadius {
		props = append(props, radiusProps...)
	}
	if o.Spacing {
		props = append(props, marginProps...)
		props = append(props, paddingProps...)
	}
	return props
}

// Visible applies the cheap visibility filter: minimum size and a bounding
// box overlapping the slack-scaled viewport.
func (p ScoringPolicy) Visible(r Rect, vp Viewport) bool {
	if r.Width < p.MinElementSize || r.Height < p.MinElementSize {
		return false
	}
	maxX := p.ViewportSlack * vp.Width
	maxY := p.ViewportSlack * vp.Height
	if r.X+r.Width < -maxX || r.X > maxX {
		return false
	}
	if r.Y+r.Height < -maxY || r.Y > maxY {
		return false
	}
	return true
}

// Score computes the style set and score for one element from its computed
// style. It does not apply the visibility filter.
func (p ScoringPolicy) Score(style map[string]string, r Rect, vp Viewport, opts AutoOptions) (entity.Declarations, float64) {
	styles := entity.Declarations{}
	sum := 0.0

	if opts.Background && p.backgroundVisible(style) {
		styles["background"] = "none"
		styles["background-image"] = "none"
		sum += p.BackgroundWeight
	}
	if opts.BorderRadius && sumPx(style, radiusProps) > 0 {
		styles["border-radius"] = "0"
		sum += p.RadiusWeight
	}
	if opts.Spacing {
		if sumPx(style, marginProps) > 0 {
			styles["margin"] = "0"
			sum += p.MarginWeight
		}
		if padding := sumPx(style, paddingProps); padding > 0 {
			if padding > p.PaddingThreshold {
				styles["padding"] = "0"
			}
			sum += p.PaddingWeight
		}
	}

	areaFrac := 0.0
	if vpArea := vp.Width * vp.Height; vpArea > 0 {
		areaFrac = math.Min(1, r.Area()/vpArea)
	}
	return styles, sum * (p.AreaBase + areaFrac)
}

// Candidates scores every visible candidate element of doc and returns the
// non-empty ones in descending score order, clamped to the limit.
func (p ScoringPolicy) Candidates(doc Document, vp Viewport, opts AutoOptions) ([]Candidate, error) {
	elements, err := doc.QuerySelectorAll(p.CandidateSelector())
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	props := opts.styleProps()
	out := make([]Candidate, 0, len(elements))
	for _, el := range elements {
		r := el.Rect()
		if !p.Visible(r, vp) {
			continue
		}
		style, err := el.ComputedStyle(props...)
		if err != nil {
			continue
		}
		styles, score := p.Score(style, r, vp, opts)
		if len(styles) == 0 {
			continue
		}
		out = append(out, Candidate{Element: el, Styles: styles, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit := p.Limit(opts.Limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AutoTweaks turns the top candidates into tweaks. With the background
// heuristic on, the html/body flatten tweak is always appended.
func AutoTweaks(doc Document, vp Viewport, opts AutoOptions, policy ScoringPolicy) ([]entity.StyleTweak, error) {
	candidates, err := policy.Candidates(doc, vp, opts)
	if err != nil {
		return nil, err
	}

	tweaks := make([]entity.StyleTweak, 0, len(candidates)+1)
	for _, c := range candidates {
		tweaks = append(tweaks, entity.StyleTweak{
			Selector:      UniqueSelector(c.Element),
			Styles:        c.Styles,
			Important:     true,
			PseudoCleanup: true,
		})
	}
	if opts.Background {
		tweaks = append(tweaks, flattenTweak("html, body"))
	}
	return tweaks, nil
}

func (p ScoringPolicy) backgroundVisible(style map[string]string) bool {
	if img := strings.TrimSpace(style["background-image"]); img != "" && img != "none" {
		return true
	}
	return ColorAlpha(style["background-color"]) > p.AlphaEpsilon
}

// sumPx adds the signed lengths of props, so opposing negative and positive
// values cancel out.
func sumPx(style map[string]string, props []string) float64 {
	total := 0.0
	for _, prop := range props {
		total += ParsePx(style[prop])
	}
	return total
}

// ParsePx reads the leading number of a CSS length ("12px", "4px 8px", "0").
// Unparseable values count as zero.
func ParsePx(v string) float64 {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) {
		c := v[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return f
}

// ColorAlpha returns the alpha channel of a CSS color. Colors whose alpha
// cannot be expressed are treated as opaque.
func ColorAlpha(color string) float64 {
	c := strings.ToLower(strings.TrimSpace(color))
	switch {
	case c == "":
		return 0
	case c == "transparent":
		return 0
	case strings.HasPrefix(c, "#"):
		return hexAlpha(c[1:])
	case strings.HasPrefix(c, "rgb"), strings.HasPrefix(c, "hsl"):
		return functionalAlpha(c)
	default:
		return 1
	}
}

func hexAlpha(hex string) float64 {
	switch len(hex) {
	case 4:
		v, err := strconv.ParseUint(strings.Repeat(hex[3:4], 2), 16, 8)
		if err != nil {
			return 1
		}
		return float64(v) / 255
	case 8:
		v, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return 1
		}
		return float64(v) / 255
	default:
		return 1
	}
}

// functionalAlpha parses rgb()/rgba()/hsl()/hsla() in comma or space syntax.
func functionalAlpha(c string) float64 {
	open := strings.IndexByte(c, '(')
	closeIdx := strings.LastIndexByte(c, ')')
	if open < 0 || closeIdx < open {
		return 1
	}
	body := c[open+1 : closeIdx]

	var alpha string
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		alpha = body[slash+1:]
	} else {
		parts := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' })
		if len(parts) < 4 {
			return 1
		}
		alpha = parts[3]
	}

	alpha = strings.TrimSpace(alpha)
	if strings.HasSuffix(alpha, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(alpha, "%"), 64)
		if err != nil {
			return 1
		}
		return f / 100
	}
	f, err := strconv.ParseFloat(alpha, 64)
	if err != nil {
		return 1
	}
	return f
}
