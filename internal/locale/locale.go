// Package locale probes the platform locale the POSIX way, through the
// LC_ALL, LC_CTYPE and LANG environment variables. Probing failures are
// recovered here by substituting documented fallbacks, never propagated.
package locale

import (
	"errors"
	"os"
	"strings"
)

const (
	// FallbackEncoding is substituted when no usable encoding can be probed.
	FallbackEncoding = "utf-8"
	// FallbackLang is substituted when no usable language code can be probed.
	FallbackLang = "en_US"
)

var errUnavailable = errors.New("locale unavailable")

// Swapped in tests.
var lookupEnv = os.LookupEnv

// PreferredEncoding returns the platform's preferred text encoding, or
// FallbackEncoding when the locale cannot be probed.
func PreferredEncoding() string {
	if _, encoding, err := probe(); err == nil && encoding != "" {
		return encoding
	}
	return FallbackEncoding
}

// DefaultLang returns the platform's default language code, or FallbackLang
// when the locale cannot be probed or carries no language.
func DefaultLang() string {
	if lang, _, err := probe(); err == nil && lang != "" {
		return lang
	}
	return FallbackLang
}

// probe splits the first non-empty locale variable into its language code
// and encoding. A value of "C" or "POSIX" carries neither.
func probe() (lang, encoding string, err error) {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value, ok := lookupEnv(key)
		if !ok || value == "" {
			continue
		}
		if value == "C" || value == "POSIX" {
			return "", "", nil
		}

		// Strip any modifier, then split "lang.encoding".
		value, _, _ = strings.Cut(value, "@")
		lang, encoding, _ = strings.Cut(value, ".")
		return lang, encoding, nil
	}
	return "", "", errUnavailable
}
