package validate

import "fmt"

// CheckDigitMod10 computes the GS1 Mod-10 check digit for a digit string
// (without its check digit). Walking right to left, digits are multiplied by
// alternating 3,1,3,1..., summed, and the check digit is (10 - sum%10) % 10.
// It returns -1 for an empty or non-numeric input.
func CheckDigitMod10(digits string) int {
	if !isDigits(digits) {
		return -1
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10
}

// CheckDigit validates the trailing Mod-10 check digit of a complete numeric
// value (GTIN, SSCC, GLN, GSIN, ...). Metadata records both the provided and
// the calculated digit.
func CheckDigit(value string) Result {
	r := okResult()
	if !isDigits(value) {
		r.fail("value must be numeric for check digit validation")
		return r
	}
	if len(value) < 2 {
		r.fail("value too short for check digit validation")
		return r
	}

	provided := int(value[len(value)-1] - '0')
	calculated := CheckDigitMod10(value[:len(value)-1])

	r.Meta["calculated_check_digit"] = calculated
	r.Meta["provided_check_digit"] = provided
	r.Meta["check_digit_valid"] = provided == calculated

	if provided != calculated {
		r.fail(fmt.Sprintf("check digit mismatch: expected %d, got %d", calculated, provided))
	}
	return r
}
