package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/plotforge/plotforge/internal/colors"
	"github.com/plotforge/plotforge/internal/fonts"
)

// DefaultLabelPadding is the clearance, in pixels on each side, required
// for a value label to count as fitting inside a bar.
const DefaultLabelPadding = 4.0

// insideLabelLuminance is the relative-luminance cutoff below which a bar
// is dark enough that an inside label switches to white text.
const insideLabelLuminance = 0.4

// FormatLabel renders a numeric value for display on a bar. The format is
// a brace template in the style of "${:,.0f}" or "{:.0%}": literal text
// around one placeholder, with optional thousands grouping, precision, and
// a verb (f, d, e, g, or % for percentages). An empty format renders
// integers without a decimal point and everything else compactly.
func FormatLabel(value float64, format string) string {
	if format == "" {
		return defaultLabelFormat(value)
	}
	open := strings.IndexByte(format, '{')
	closing := strings.IndexByte(format, '}')
	if open < 0 || closing < open {
		return defaultLabelFormat(value)
	}
	placeholder := format[open+1 : closing]
	if i := strings.IndexByte(placeholder, ':'); i >= 0 {
		placeholder = placeholder[i+1:]
	} else {
		placeholder = ""
	}
	return format[:open] + applyPlaceholder(value, placeholder) + format[closing+1:]
}

func defaultLabelFormat(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'g', 6, 64)
}

// applyPlaceholder renders value per a placeholder spec of the form
// [,][.precision][verb]. Unsupported flags (fill, width, sign) are
// accepted and ignored.
func applyPlaceholder(value float64, placeholder string) string {
	group := false
	precision := -1
	verb := byte(0)

	for i := 0; i < len(placeholder); {
		switch c := placeholder[i]; {
		case c == ',':
			group = true
			i++
		case c == '.':
			i++
			start := i
			for i < len(placeholder) && placeholder[i] >= '0' && placeholder[i] <= '9' {
				i++
			}
			if n, err := strconv.Atoi(placeholder[start:i]); err == nil {
				precision = n
			}
		case c == 'f' || c == 'd' || c == 'e' || c == 'g' || c == '%':
			verb = c
			i++
		default:
			i++
		}
	}

	var out string
	switch verb {
	case 'f':
		if precision < 0 {
			precision = 6
		}
		out = strconv.FormatFloat(value, 'f', precision, 64)
	case '%':
		if precision < 0 {
			precision = 6
		}
		out = strconv.FormatFloat(value*100, 'f', precision, 64)
	case 'd':
		out = strconv.FormatInt(int64(math.Round(value)), 10)
	case 'e':
		if precision < 0 {
			precision = 6
		}
		out = strconv.FormatFloat(value, 'e', precision, 64)
	case 'g':
		if precision < 0 {
			precision = 6
		}
		out = strconv.FormatFloat(value, 'g', precision, 64)
	default:
		out = defaultLabelFormat(value)
	}

	if group {
		out = groupThousands(out)
	}
	if verb == '%' {
		out += "%"
	}
	return out
}

// groupThousands inserts commas into the integer part of a formatted
// number, e.g. "38000" becomes "38,000".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	intPart, rest := s, ""
	if i := strings.IndexAny(s, ".eE"); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + rest
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + rest
}

// LabelFitsInside reports whether label text at fontSize fits inside a bar
// of the given dimensions with DefaultLabelPadding clearance on every side.
func LabelFitsInside(label string, fontSize, barWidth, barHeight float64, font *fonts.Table) bool {
	w := font.TextWidth(label, fontSize)
	h := fonts.TextHeight(fontSize)
	return w+2*DefaultLabelPadding <= barWidth && h+2*DefaultLabelPadding <= barHeight
}

// InsideLabelColor picks the text color for a label drawn on top of a bar:
// white on dark fills, the theme text color otherwise. Unparseable fills
// count as dark.
func InsideLabelColor(barColor, themeTextColor string) string {
	lum, err := colors.RelativeLuminance(barColor)
	if err != nil || lum < insideLabelLuminance {
		return "#FFFFFF"
	}
	return themeTextColor
}
