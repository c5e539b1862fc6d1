// Package push hands device notifications to a delivery channel. Actual
// delivery to Apple, Google or Expo happens downstream; this side only
// filters out tokens that can never be delivered to.
package push

import (
	"regexp"
	"strings"
)

var (
	expoToken   = regexp.MustCompile(`^Expo(nent)?PushToken\[[A-Za-z0-9_-]+\]$`)
	nativeToken = regexp.MustCompile(`^[A-Za-z0-9:_-]{32,4096}$`)
)

// ValidToken accepts Expo push tokens and raw FCM or APNs tokens.
func ValidToken(token string) bool {
	token = strings.TrimSpace(token)
	return expoToken.MatchString(token) || nativeToken.MatchString(token)
}

// partition splits tokens into deliverable and rejected ones.
func partition(tokens []string) (valid, invalid []string) {
	for _, token := range tokens {
		if ValidToken(token) {
			valid = append(valid, token)
		} else {
			invalid = append(invalid, token)
		}
	}
	return valid, invalid
}
