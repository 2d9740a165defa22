package validate

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Decimal decodes a digit string with an implied decimal place count, as used
// by the weight/measure AI families (310n, 392n, ...). AI 3102 with value
// "001234" decodes to 12.34. It returns the numeric value and a display
// string with the decimal point inserted.
func Decimal(value string, places int) (float64, string, error) {
	if !isDigits(value) {
		return 0, "", errors.New("value must be numeric")
	}
	if places < 0 || places > 9 {
		return 0, "", errors.New("decimal places must be in [0,9]")
	}

	if places == 0 {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, "", err
		}
		return v, value, nil
	}

	if len(value) <= places {
		value = strings.Repeat("0", places+1-len(value)) + value
	}
	intPart := value[:len(value)-places]
	decPart := value[len(value)-places:]

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, "", err
	}
	return float64(n) / math.Pow10(places), intPart + "." + decPart, nil
}
