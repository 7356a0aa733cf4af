package cooking

import (
	"bytes"
	"text/template"

	"github.com/noxowl/smartspeaker/internal/message"
)

var allLangs = []message.Lang{message.LangEN, message.LangJA, message.LangZH, message.LangKO}

// render substitutes {{.name}} placeholders in src with vars, leaving any
// placeholder absent from vars as an empty string rather than erroring.
func render(src string, vars map[string]string) string {
	t, err := template.New("cooking").Option("missingkey=zero").Parse(src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return src
	}
	return buf.String()
}

// renderI18n applies render to each of tpl's four languages using the
// matching per-language variable set.
func renderI18n(tpl message.I18nText, vars map[message.Lang]map[string]string) message.I18nText {
	out := message.NewI18nText()
	for _, l := range allLangs {
		v := vars[l]
		switch l {
		case message.LangEN:
			out = out.EN(render(tpl.For(l), v))
		case message.LangJA:
			out = out.JA(render(tpl.For(l), v))
		case message.LangZH:
			out = out.ZH(render(tpl.For(l), v))
		case message.LangKO:
			out = out.KO(render(tpl.For(l), v))
		}
	}
	return out
}

func joinSeparator(l message.Lang) string {
	switch l {
	case message.LangJA, message.LangZH:
		return "、"
	default:
		return ". "
	}
}
