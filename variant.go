// SPDX-License-Identifier: Unlicense OR MIT

package shaping

// Style is the font slant.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	default:
		panic("invalid Style")
	}
}

// Weight is a font weight in CSS units (100-900).
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// thicken adds delta to w, clamping to the valid CSS weight range.
func (w Weight) thicken(delta int) Weight {
	thick := w + Weight(delta)
	switch {
	case thick < WeightThin:
		return WeightThin
	case thick > WeightBlack:
		return WeightBlack
	default:
		return thick
	}
}

// Stretch is a font width, relative to the typeface's normal width.
type Stretch int

const (
	StretchUltraCondensed Stretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// Variant is the (style, weight, stretch) tuple used to select a face.
type Variant struct {
	Style   Style
	Weight  Weight
	Stretch Stretch
}

// resolveVariant builds the Variant to shape with, reading STYLE, WEIGHT and
// STRETCH from styles and thickening/toggling it per the STRONG and EMPH
// keys, as the typesetter's "strong"/"emph" wrapper functions request.
func resolveVariant(styles StyleChain) Variant {
	v := Variant{
		Style:   styles.Style(),
		Weight:  styles.Weight(),
		Stretch: styles.Stretch(),
	}

	if styles.Strong() {
		v.Weight = v.Weight.thicken(300)
	}

	if styles.Emph() {
		switch v.Style {
		case StyleNormal:
			v.Style = StyleItalic
		case StyleItalic:
			v.Style = StyleNormal
		case StyleOblique:
			v.Style = StyleNormal
		}
	}

	return v
}
