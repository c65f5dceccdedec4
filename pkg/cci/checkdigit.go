package cci

// Two check-digit rules are in play. They agree while every product stays
// below 100, which holds for the current weights (digit <= 9, weight <= 2).
// Keep them separate: a future weight table above 11 would make them diverge.

var (
	bbvaBranchWeights  = []int{0, 1, 2, 1, 0, 2, 1, 2}
	bbvaAccountWeights = []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}
)

// bcpCheckDigit weights digits 1,2,1,2,... from the left and reduces
// two-digit products by summing all of their decimal digits.
// group must contain only ASCII digits.
func bcpCheckDigit(group string) byte {
	sum := 0
	for i := 0; i < len(group); i++ {
		weight := 1
		if i%2 == 1 {
			weight = 2
		}
		product := int(group[i]-'0') * weight
		if product >= 10 {
			product = digitSum(product)
		}
		sum += product
	}
	return checkDigitFromSum(sum)
}

// weightedCheckDigit multiplies each digit by the matching weight and reduces
// two-digit products as product/10 + product%10.
// digits and weights must have the same length.
func weightedCheckDigit(digits string, weights []int) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		product := int(digits[i]-'0') * weights[i]
		if product >= 10 {
			product = product/10 + product%10
		}
		sum += product
	}
	return checkDigitFromSum(sum)
}

func digitSum(n int) int {
	total := 0
	for n > 0 {
		total += n % 10
		n /= 10
	}
	return total
}

func checkDigitFromSum(sum int) byte {
	return byte('0' + (10-sum%10)%10)
}
