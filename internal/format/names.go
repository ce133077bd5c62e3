package format

import (
	"strings"
)

// SplitAccountName splits an account name of the form
// "Handle.1234" into its display form and keeps the full name for
// tooltips. The numeric tag is the part after the last dot, so handles
// containing literal dots ("dio di morte.7930") stay intact.
func SplitAccountName(accountName string) (displayName, fullName string) {
	if accountName == "" {
		return "", ""
	}

	idx := strings.LastIndex(accountName, ".")
	if idx < 0 {
		return accountName, accountName
	}
	return accountName[:idx], accountName
}

// ShortGuildName returns the last word of a guild name, the form used
// on compact surfaces. "Vengeance is Power" becomes "Power".
func ShortGuildName(fullName string) string {
	if fullName == "" {
		return ""
	}

	words := strings.Fields(fullName)
	if len(words) == 0 {
		return fullName
	}
	return words[len(words)-1]
}
