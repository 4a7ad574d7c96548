package validate

import "regexp"

var (
	accountNumberRe = regexp.MustCompile(`^\d{9,18}$`)
	ifscCodeRe      = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	mpinRe          = regexp.MustCompile(`^\d{6}$`)
	refIDRe         = regexp.MustCompile(`^\d{12}$`)
	orderIDRe       = regexp.MustCompile(`^OI[A-Z0-9]{6}$`)
)

// IsAccountNumber reports whether s is a 9-18 digit bank account number.
func IsAccountNumber(s string) bool {
	return accountNumberRe.MatchString(s)
}

// IsIFSCCode reports whether s is a valid IFSC routing code.
func IsIFSCCode(s string) bool {
	return ifscCodeRe.MatchString(s)
}

// IsMPin reports whether s is a 6-digit transaction PIN.
func IsMPin(s string) bool {
	return mpinRe.MatchString(s)
}

// IsTransactionRefID reports whether s is a 12-digit bank reference.
func IsTransactionRefID(s string) bool {
	return refIDRe.MatchString(s)
}

// IsOrderID reports whether s is a ledger order identifier.
func IsOrderID(s string) bool {
	return orderIDRe.MatchString(s)
}
