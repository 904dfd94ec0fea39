package extract

import (
	"regexp"

	"github.com/bharatvision/labelcheck/internal/model"
)

// Pattern is one ordered recognizer for a field: a regular expression plus
// the capture group that yields the value. Patterns are immutable after
// construction and carry no per-call state.
type Pattern struct {
	re    *regexp.Regexp
	group int
}

// Library holds, per field, the ordered pattern list. Order is significant:
// it encodes precedence from explicit labeled forms down to bare fallbacks
// with the highest false-positive risk. First accepted match wins.
type Library map[model.FieldKind][]Pattern

func pat(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr), group: 1}
}

// quantity unit allow-list; a bare number without a unit is never accepted
const unitAlt = `(?:g|gm|gram|grams|kg|kilogram|ml|millilitre|l|litre|mg|units?|pcs?|pieces?|pack|strips?)`

// DefaultLibrary returns the curated pattern tables. Input is lower-cased
// before matching, so the expressions are lowercase-only.
func DefaultLibrary() Library {
	return Library{
		model.FieldMRP: {
			// Labeled forms first
			pat(`mrp[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			pat(`maximum retail price[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			pat(`max retail price[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			pat(`retail price[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			pat(`m\.r\.p[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			pat(`mrp rs\.?\s*([0-9,]+\.?\d*)`),
			pat(`price\s*\(incl\.?\s*taxes?\)[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			pat(`price inclusive of all taxes[:\s]*₹?\s*([0-9,]+\.?\d*)`),
			// Bare currency markers last: most prone to matching an
			// unrelated number (e.g. a phone prefix)
			pat(`₹\s*([0-9,]+\.?\d*)`),
			pat(`rs\.?\s*([0-9,]+\.?\d*)`),
			pat(`inr\s*([0-9,]+\.?\d*)`),
		},
		model.FieldNetQuantity: {
			pat(`net quantity[:\s]*([0-9.]+\s*` + unitAlt + `)`),
			pat(`net qty[:\s]*([0-9.]+\s*` + unitAlt + `)`),
			pat(`net wt\.?[:\s]*([0-9.]+\s*(?:g|gm|gram|grams|kg|kilogram|ml|millilitre|l|litre|mg))`),
			pat(`net weight[:\s]*([0-9.]+\s*(?:g|gm|gram|grams|kg|kilogram|ml|millilitre|l|litre|mg))`),
			pat(`net vol\.?[:\s]*([0-9.]+\s*(?:ml|millilitre|l|litre))`),
			pat(`quantity[:\s]*([0-9.]+\s*` + unitAlt + `)`),
			pat(`contents?[:\s]*([0-9.]+\s*` + unitAlt + `)`),
			pat(`n\.w\.?[:\s]*([0-9.]+\s*(?:g|gm|kg|ml|l))`),
			pat(`nt\.?\s*wt\.?[:\s]*([0-9.]+\s*(?:g|gm|kg|ml|l))`),
			pat(`wt\.?[:\s]*([0-9.]+\s*(?:g|gm|kg|ml|l))`),
			pat(`qty\.?[:\s]*([0-9.]+\s*(?:g|gm|kg|ml|l|units?|pcs?))`),
			pat(`approx\.?\s*([0-9.]+\s*(?:g|gm|kg|ml|l))`),
			// Catch-all: number + unit anywhere
			pat(`([0-9.]+\s*(?:g|gm|gram|grams|kg|kilogram|ml|millilitre|l|litre|mg))`),
		},
		model.FieldManufacturer: {
			// All manufacturer patterns require a labeled lead-in; capture
			// is line-bounded because raw OCR lines are noisy and an
			// unbounded capture would swallow unrelated trailing text
			pat(`manufactured by[:\s]+([^\n]{10,200})`),
			pat(`mfg\.?\s*by[:\s]+([^\n]{10,200})`),
			pat(`mfd\.?\s*by[:\s]+([^\n]{10,200})`),
			pat(`manufacturer[:\s]+([^\n]{10,200})`),
			pat(`packed by[:\s]+([^\n]{10,200})`),
			pat(`pkd\.?\s*by[:\s]+([^\n]{10,200})`),
			pat(`packer[:\s]+([^\n]{10,200})`),
			pat(`marketed by[:\s]+([^\n]{10,200})`),
			pat(`imported by[:\s]+([^\n]{10,200})`),
			pat(`importer[:\s]+([^\n]{10,200})`),
			pat(`mnf\.?\s*by[:\s]+([^\n]{10,200})`),
			pat(`mfr\.?\s*by[:\s]+([^\n]{10,200})`),
			pat(`mftd\.?\s*by[:\s]+([^\n]{10,200})`),
			pat(`pkged\.?\s*by[:\s]+([^\n]{10,200})`),
		},
		model.FieldDateOfManufacture: {
			// Day/month/year numeric forms
			pat(`mfd\.?\s*date?[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`mfg\.?\s*date?[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`manufacturing date[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`date of mfg[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`packed on[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`pkd\.?\s*on[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`pkd\.?\s*date?[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`packaging date[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`import date[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			// Month-name/year forms
			pat(`mfd\.?\s*([a-z]{3,9}\s*[0-9]{2,4})`),
			pat(`mfg\.?\s*([a-z]{3,9}\s*[0-9]{2,4})`),
			pat(`pkd\.?\s*([a-z]{3,9}\s*[0-9]{2,4})`),
			pat(`m[:/]y[:\s]*([0-9]{1,2}[/-][0-9]{2,4})`),
			// Best before / expiry phrasing satisfies the date requirement:
			// regulatory intent is that some manufacture-adjacent date is
			// disclosed, not a specific one
			pat(`best before[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`best before[:\s]*([0-9]+\s*(?:days?|months?|years?))`),
			pat(`expiry[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{2,4})`),
			pat(`shelf life[:\s]*([0-9]+\s*(?:days?|months?|years?))`),
		},
		model.FieldCountryOfOrigin: {
			pat(`country of origin[:\s]+([^\n]{3,50})`),
			pat(`made in[:\s]+([^\n]{3,50})`),
			pat(`manufactured in[:\s]+([^\n]{3,50})`),
			pat(`product of[:\s]+([^\n]{3,50})`),
			pat(`origin[:\s]+([^\n]{3,50})`),
			pat(`c[/]o[:\s]+([^\n]{3,50})`),
			pat(`country[:\s]+([^\n]{3,50})`),
			pat(`imported from[:\s]+([^\n]{3,50})`),
			pat(`source country[:\s]+([^\n]{3,50})`),
		},
		model.FieldConsumerCare: {
			pat(`consumer care[:\s]+([^\n]{10,150})`),
			pat(`customer care[:\s]+([^\n]{10,150})`),
			pat(`customer support[:\s]+([^\n]{10,150})`),
			pat(`helpline[:\s]+([^\n]{10,150})`),
			pat(`toll free[:\s]+([^\n]{10,150})`),
			pat(`support[:\s]+([^\n]{10,150})`),
			pat(`complaints?[:\s]+([^\n]{10,150})`),
			pat(`grievance[:\s]+([^\n]{10,150})`),
			pat(`contact[:\s]+([^\n]{10,150})`),
			pat(`cust\.?\s*care[:\s]+([^\n]{10,150})`),
			pat(`helpline no\.?[:\s]+([^\n]{10,150})`),
			pat(`care no\.?[:\s]+([^\n]{10,150})`),
			pat(`email[:\s]+([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`),
			pat(`call[:\s]+([0-9\s\-+()]{10,20})`),
			pat(`write to[:\s]+([^\n]{10,150})`),
			// Unlabeled structural fallbacks: many labels print only a
			// bare phone number with no caption
			pat(`(\d{10})`),
			pat(`(\+\d{1,3}\s*\d{10})`),
			pat(`(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`),
		},
	}
}

// Match runs the pattern against already-normalized text and returns the
// captured value, or "" when there is no match.
func (p Pattern) Match(text string) string {
	m := p.re.FindStringSubmatch(text)
	if m == nil || len(m) <= p.group {
		return ""
	}
	return m[p.group]
}

// PatternsFor returns the ordered pattern list for a field
func (l Library) PatternsFor(field model.FieldKind) []Pattern {
	return l[field]
}
