package util

import (
	"net/url"
	"strings"

	"github.com/totegamma/campsite/core"
)

// ValidateURL accepts absolute http(s) urls only
func ValidateURL(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return core.NewErrorInvalidInput(field + " is required")
	}

	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return core.NewErrorInvalidInput(field + " must be an absolute http(s) url")
	}

	return nil
}
