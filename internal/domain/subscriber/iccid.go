package subscriber

// LuhnChecksum computes the Luhn check digit for a partial numeric string.
// ICCIDs carry a trailing Luhn digit; the seed tooling uses this to mint
// well-formed card numbers.
func LuhnChecksum(number string) int {
	total := 0
	pos := 1
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if pos%2 == 1 {
			total += d
		} else {
			dd := d * 2
			if dd > 9 {
				dd -= 9
			}
			total += dd
		}
		pos++
	}
	return (10 - total%10) % 10
}

// ValidLuhn reports whether a numeric string ends in a correct Luhn digit
func ValidLuhn(number string) bool {
	if len(number) < 2 || !isDigits(number) {
		return false
	}
	return LuhnChecksum(number[:len(number)-1]) == int(number[len(number)-1]-'0')
}
