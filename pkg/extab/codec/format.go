package codec

import "github.com/ukaji3/extab-go/pkg/extab/models"

// FormatCell converts one typed cell into its canonical textual form. Every
// kind has a defined form, so there is no error outcome:
//
//   - numbers print their full stored digit sequence in plain decimal
//     notation, never scientific, never truncated;
//   - dates print as YYYY-MM-DD in the proleptic Gregorian calendar,
//     independent of locale;
//   - text is returned unchanged (escaping is a separate concern);
//   - booleans print as TRUE or FALSE, errors as their code, blanks as "".
func FormatCell(c models.Cell) string {
	switch c.Kind {
	case models.KindText:
		return c.Text
	case models.KindNumber:
		return c.Number.String()
	case models.KindDate:
		return c.Date.Format(DateLayout)
	case models.KindBool:
		if c.Bool {
			return TokenTrue
		}
		return TokenFalse
	case models.KindError:
		return c.Code
	default:
		return ""
	}
}
