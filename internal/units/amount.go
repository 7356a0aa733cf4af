package units

import (
	"errors"
	"fmt"

	"github.com/noxowl/smartspeaker/internal/message"
)

// ErrUnitMismatch is returned when an arithmetic operation is attempted
// across incompatible amount tags (e.g. MilliGram + MilliLiter).
var ErrUnitMismatch = errors.New("units: incompatible amount tags")

// Quarter is an integer count in units of one quarter; 4 == one whole.
type Quarter int

// I18n renders the quarter count as a human phrase ("a quarter", "half",
// "three quarters", or "N and <remainder>" / "N").
func (q Quarter) I18n() message.I18nText {
	switch q {
	case 1:
		return message.NewI18nText().EN("a quarter").JA("4分の1").ZH("四分之一").KO("사분의 일")
	case 2:
		return message.NewI18nText().EN("half").JA("二分の一").ZH("一半").KO("반")
	case 3:
		return message.NewI18nText().EN("three quarters").JA("4分の3").ZH("四分之三").KO("사분의 삼")
	default:
		full := int(q) / 4
		rem := int(q) % 4
		if rem > 0 {
			r := Quarter(rem).I18n()
			return message.NewI18nText().
				EN(fmt.Sprintf("%d and %s", full, r.For(message.LangEN))).
				JA(fmt.Sprintf("%dと%s", full, r.For(message.LangJA))).
				ZH(fmt.Sprintf("%d和%s", full, r.For(message.LangZH))).
				KO(fmt.Sprintf("%d과 %s", full, r.For(message.LangKO)))
		}
		return message.NewI18nText().
			EN(fmt.Sprintf("%d", full)).
			JA(fmt.Sprintf("%d", full)).
			ZH(fmt.Sprintf("%d", full)).
			KO(fmt.Sprintf("%d", full))
	}
}

// Value returns the quarter count as a fraction of a whole (4 quarters = 1.0).
func (q Quarter) Value() float64 { return float64(q) * 0.25 }

// unitTag discriminates the Amount union's concrete cases.
type unitTag int

const (
	tagMilliGram unitTag = iota
	tagMilliLiter
	tagPiece
	tagTbsp
	tagTsp
	tagCup
)

// Amount is the tagged union over CookingIngredientAmount's six cases:
// MilliGram/MilliLiter hold a raw integer; Piece/Tbsp/Tsp/Cup hold a
// Quarter. The zero value is MilliGram(0).
type Amount struct {
	tag     unitTag
	raw     int32
	quarter Quarter
}

func MilliGram(v int32) Amount   { return Amount{tag: tagMilliGram, raw: v} }
func MilliLiter(v int32) Amount  { return Amount{tag: tagMilliLiter, raw: v} }
func Piece(q Quarter) Amount     { return Amount{tag: tagPiece, quarter: q} }
func Tbsp(q Quarter) Amount      { return Amount{tag: tagTbsp, quarter: q} }
func Tsp(q Quarter) Amount       { return Amount{tag: tagTsp, quarter: q} }
func Cup(q Quarter) Amount       { return Amount{tag: tagCup, quarter: q} }

// Value returns the amount's raw numeric magnitude: the integer for
// MilliGram/MilliLiter, or the quarter-derived fraction of a whole for the
// approximate units.
func (a Amount) Value() float64 {
	switch a.tag {
	case tagMilliGram, tagMilliLiter:
		return float64(a.raw)
	default:
		return a.quarter.Value()
	}
}

// RawInt returns the underlying integer: the milligram/milliliter count, or
// the raw quarter count for approximate units.
func (a Amount) RawInt() int32 {
	switch a.tag {
	case tagMilliGram, tagMilliLiter:
		return a.raw
	default:
		return int32(a.quarter)
	}
}

func (a Amount) sameTag(b Amount) bool { return a.tag == b.tag }

// Add adds two amounts of the same tag, returning ErrUnitMismatch if the
// tags differ.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.sameTag(b) {
		return Amount{}, fmt.Errorf("units: add %s + %s: %w", a.TemplateCode(), b.TemplateCode(), ErrUnitMismatch)
	}
	return withRaw(a, a.RawInt()+b.RawInt()), nil
}

// Sub subtracts b from a; same constraints as Add.
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.sameTag(b) {
		return Amount{}, fmt.Errorf("units: sub %s - %s: %w", a.TemplateCode(), b.TemplateCode(), ErrUnitMismatch)
	}
	return withRaw(a, a.RawInt()-b.RawInt()), nil
}

func withRaw(tmpl Amount, raw int32) Amount {
	switch tmpl.tag {
	case tagMilliGram, tagMilliLiter:
		tmpl.raw = raw
	default:
		tmpl.quarter = Quarter(raw)
	}
	return tmpl
}

// TemplateCode returns the short machine code used by template variable
// lookups ("mg", "ml", "p", "tbsp", "tsp", "cup").
func (a Amount) TemplateCode() string {
	switch a.tag {
	case tagMilliGram:
		return "mg"
	case tagMilliLiter:
		return "ml"
	case tagPiece:
		return "p"
	case tagTbsp:
		return "tbsp"
	case tagTsp:
		return "tsp"
	case tagCup:
		return "cup"
	default:
		return "?"
	}
}

// I18n renders the amount with its unit name, e.g. "500 milligram" or
// "2 tablespoon" / "おおさじ2".
func (a Amount) I18n() message.I18nText {
	switch a.tag {
	case tagMilliGram:
		return message.NewI18nText().
			EN(fmt.Sprintf("%d milligram", a.raw)).
			JA(fmt.Sprintf("%dミリグラム", a.raw)).
			ZH(fmt.Sprintf("%d毫克", a.raw)).
			KO(fmt.Sprintf("%d밀리그램", a.raw))
	case tagMilliLiter:
		return message.NewI18nText().
			EN(fmt.Sprintf("%d milliliter", a.raw)).
			JA(fmt.Sprintf("%dミリリットル", a.raw)).
			ZH(fmt.Sprintf("%d毫升", a.raw)).
			KO(fmt.Sprintf("%d밀리리터", a.raw))
	case tagPiece:
		q := a.quarter.I18n()
		return message.NewI18nText().
			EN(fmt.Sprintf("%s piece", q.For(message.LangEN))).
			JA(fmt.Sprintf("%s個", q.For(message.LangJA))).
			ZH(fmt.Sprintf("%s个", q.For(message.LangZH))).
			KO(fmt.Sprintf("%s개", q.For(message.LangKO)))
	case tagTbsp:
		q := a.quarter.I18n()
		return message.NewI18nText().
			EN(fmt.Sprintf("%s tablespoon", q.For(message.LangEN))).
			JA(fmt.Sprintf("おおさじ%s", q.For(message.LangJA))).
			ZH(fmt.Sprintf("大勺%s", q.For(message.LangZH))).
			KO(fmt.Sprintf("%s큰술", q.For(message.LangKO)))
	case tagTsp:
		q := a.quarter.I18n()
		return message.NewI18nText().
			EN(fmt.Sprintf("%s teaspoon", q.For(message.LangEN))).
			JA(fmt.Sprintf("こさじ%s", q.For(message.LangJA))).
			ZH(fmt.Sprintf("小勺%s", q.For(message.LangZH))).
			KO(fmt.Sprintf("%s작은술", q.For(message.LangKO)))
	case tagCup:
		q := a.quarter.I18n()
		return message.NewI18nText().
			EN(fmt.Sprintf("%s cup", q.For(message.LangEN))).
			JA(fmt.Sprintf("%sカップ", q.For(message.LangJA))).
			ZH(fmt.Sprintf("%s杯", q.For(message.LangZH))).
			KO(fmt.Sprintf("%s컵", q.For(message.LangKO)))
	default:
		return message.NewI18nText()
	}
}
