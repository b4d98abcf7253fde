package lunar

import (
	"fmt"
	"strings"
)

// Culture is a closed set of supported calendar traditions. Operations that
// support only a subset return ErrUnsupportedCulture for the rest instead of
// silently defaulting.
type Culture string

const (
	Chinese Culture = "chinese"
	Islamic Culture = "islamic"
	Hindu   Culture = "hindu"
	Western Culture = "western"
)

// Cultures lists every supported culture in declaration order.
var Cultures = []Culture{Chinese, Islamic, Hindu, Western}

// ParseCulture normalizes a culture argument. An empty string defaults to
// chinese, matching the tool schema defaults.
func ParseCulture(s string) (Culture, error) {
	switch Culture(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Chinese, nil
	case Chinese:
		return Chinese, nil
	case Islamic:
		return Islamic, nil
	case Hindu:
		return Hindu, nil
	case Western:
		return Western, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedCulture, s)
}
