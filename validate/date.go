package validate

import (
	"fmt"
	"time"
)

// DefaultCenturyPivot resolves two-digit years: YY >= pivot is 19YY,
// otherwise 20YY.
const DefaultCenturyPivot = 51

// daysIn returns the number of days of a month, leap years included.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func resolveCentury(yy, pivot int) int {
	if yy >= pivot {
		return 1900 + yy
	}
	return 2000 + yy
}

func atoi2(s string) int { return int(s[0]-'0')*10 + int(s[1]-'0') }

// Date validates a GS1 date value against one of the formats YYMMDD, YYMMD0,
// YYYYMMDD or YYMMDDHH. YYMMD0 additionally allows day 00, meaning the day is
// unspecified; it resolves to the last day of the month and metadata flags
// day_unspecified. Metadata carries year/month/day plus ISO and dd/mm/yyyy
// renderings of the resolved date.
func Date(value, format string, centuryPivot int) Result {
	r := okResult()
	if !isDigits(value) {
		r.fail("date must be numeric")
		return r
	}
	if centuryPivot <= 0 {
		centuryPivot = DefaultCenturyPivot
	}

	switch format {
	case "YYMMDD", "YYMMD0":
		if len(value) != 6 {
			r.fail(fmt.Sprintf("%s date must be 6 digits, got %d", format, len(value)))
			return r
		}
		year := resolveCentury(atoi2(value[0:2]), centuryPivot)
		mm := atoi2(value[2:4])
		dd := atoi2(value[4:6])

		if mm < 1 || mm > 12 {
			r.fail(fmt.Sprintf("invalid month: %d", mm))
			return r
		}
		switch {
		case dd == 0 && format == "YYMMD0":
			r.Meta["day_unspecified"] = true
			dd = daysIn(year, mm)
		case dd < 1 || dd > 31:
			r.fail(fmt.Sprintf("invalid day: %d", dd))
			return r
		case dd > daysIn(year, mm):
			r.fail(fmt.Sprintf("day %d invalid for month %d in year %d", dd, mm, year))
			return r
		}
		r.setDateMeta(year, mm, dd)

	case "YYYYMMDD":
		if len(value) != 8 {
			r.fail(fmt.Sprintf("YYYYMMDD date must be 8 digits, got %d", len(value)))
			return r
		}
		year := atoi2(value[0:2])*100 + atoi2(value[2:4])
		mm := atoi2(value[4:6])
		dd := atoi2(value[6:8])

		if mm < 1 || mm > 12 {
			r.fail(fmt.Sprintf("invalid month: %d", mm))
			return r
		}
		if dd < 1 || dd > 31 {
			r.fail(fmt.Sprintf("invalid day: %d", dd))
			return r
		}
		if dd > daysIn(year, mm) {
			r.fail(fmt.Sprintf("day %d invalid for month %d", dd, mm))
			return r
		}
		r.setDateMeta(year, mm, dd)

	case "YYMMDDHH":
		if len(value) < 8 {
			r.fail("YYMMDDHH date must be at least 8 digits")
			return r
		}
		year := resolveCentury(atoi2(value[0:2]), centuryPivot)
		mm := atoi2(value[2:4])
		dd := atoi2(value[4:6])
		hh := atoi2(value[6:8])

		if mm < 1 || mm > 12 {
			r.fail(fmt.Sprintf("invalid month: %d", mm))
			return r
		}
		if dd < 1 || dd > 31 {
			r.fail(fmt.Sprintf("invalid day: %d", dd))
			return r
		}
		if hh > 23 {
			r.fail(fmt.Sprintf("invalid hour: %d", hh))
			return r
		}
		r.setDateMeta(year, mm, dd)
		r.Meta["hour"] = hh
		r.Meta["iso_datetime"] = fmt.Sprintf("%04d-%02d-%02dT%02d:00:00", year, mm, dd, hh)

	default:
		r.fail(fmt.Sprintf("unknown date format: %s", format))
	}
	return r
}

func (r *Result) setDateMeta(year, mm, dd int) {
	r.Meta["year"] = year
	r.Meta["month"] = mm
	r.Meta["day"] = dd
	r.Meta["iso_date"] = fmt.Sprintf("%04d-%02d-%02d", year, mm, dd)
	r.Meta["date_ddmmyyyy"] = fmt.Sprintf("%02d/%02d/%04d", dd, mm, year)
}
