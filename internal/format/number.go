package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const MaxPrecision = 6

// Number renders v the way an en-US locale does: comma grouping and exactly
// precision fraction digits. Rounding works on the shortest decimal form of v
// and resolves ties away from zero, so 1234.5 becomes "1,235".
func Number(v float64, precision int) string {
	precision = ClampPrecision(precision)

	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(digits, ".")
	intPart, fracPart = roundHalfUp(intPart, fracPart, precision)

	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	out := humanize.BigComma(n)
	if precision > 0 {
		out += "." + fracPart
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}

func ClampPrecision(precision int) int {
	if precision < 0 {
		return 0
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}
	return precision
}

func roundHalfUp(intPart, fracPart string, precision int) (string, string) {
	if len(fracPart) <= precision {
		return intPart, fracPart + strings.Repeat("0", precision-len(fracPart))
	}

	carry := fracPart[precision] >= '5'
	digits := []byte(intPart + fracPart[:precision])
	if carry {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	split := len(digits) - precision
	return string(digits[:split]), string(digits[split:])
}
