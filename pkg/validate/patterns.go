package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

var stringType = reflect.TypeOf("")

var defaultURLSchemes = []string{"http", "https"}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// AssertEmail checks that value is a non-empty string-like holding a valid
// email address and returns it as a string.
func (e *Engine) AssertEmail(value any, opts ...Option) (string, error) {
	c := buildConstraints(opts)
	if err := e.requireStringLike(value, c, 1); err != nil {
		return stringValue(value), err
	}
	s := stringValue(value)
	if isValidEmail(s) {
		return s, nil
	}
	return s, e.fail(KindFormatViolation, c, func(subject string) string {
		return fmt.Sprintf("'%s' must be a valid email address", subject)
	})
}

// isValidEmail parses with net/mail, then applies the stricter profile
// expected for typical web use: a single non-empty local part and a dotted
// domain without empty labels.
func isValidEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

// AssertURL checks that value is a string-like holding an absolute URL with
// one of the allowed schemes (http and https unless Schemes is given) and a
// non-empty host, and returns it as a string.
func (e *Engine) AssertURL(value any, opts ...Option) (string, error) {
	c := buildConstraints(opts)
	schemes := c.schemes
	if len(schemes) == 0 {
		schemes = defaultURLSchemes
	}
	if err := e.requireStringLike(value, c, 1); err != nil {
		return stringValue(value), err
	}
	s := stringValue(value)
	if isValidURL(s, schemes) {
		return s, nil
	}
	return s, e.fail(KindFormatViolation, c, func(subject string) string {
		return fmt.Sprintf("'%s' must be a valid URL with scheme %s", subject, strings.Join(schemes, " or "))
	})
}

func isValidURL(value string, schemes []string) bool {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Host == "" {
		return false
	}
	for _, scheme := range schemes {
		if strings.EqualFold(u.Scheme, scheme) {
			return true
		}
	}
	return false
}

// AssertUUID checks that value is a string-like holding a canonical UUID
// and returns it as a string.
func (e *Engine) AssertUUID(value any, opts ...Option) (string, error) {
	c := buildConstraints(opts)
	if err := e.requireStringLike(value, c, 1); err != nil {
		return stringValue(value), err
	}
	s := stringValue(value)
	if isValidUUID(s) {
		return s, nil
	}
	return s, e.fail(KindFormatViolation, c, func(subject string) string {
		return fmt.Sprintf("'%s' must be a valid UUID", subject)
	})
}

// isValidUUID rejects on shape before paying for a full parse.
func isValidUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// AssertPositive checks that value is numeric and strictly greater than
// zero.
func (e *Engine) AssertPositive(value any, opts ...Option) (any, error) {
	c := buildConstraints(opts)
	tc := c
	tc.class = classNumeric
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return value, err
	}
	if n, ok := numericValue(value); ok && n <= 0 {
		return value, e.fail(KindRangeViolation, c, func(subject string) string {
			return fmt.Sprintf("'%s' must be > 0, but got %v", subject, value)
		})
	}
	return value, nil
}

// AssertNonNegative checks that value is numeric and >= 0.
func (e *Engine) AssertNonNegative(value any, opts ...Option) (any, error) {
	return e.AssertNumeric(value, append([]Option{Min(0)}, opts...)...)
}

// AssertPercentage checks that value is numeric and within 0..100.
func (e *Engine) AssertPercentage(value any, opts ...Option) (any, error) {
	return e.AssertNumeric(value, append([]Option{Min(0), Max(100)}, opts...)...)
}

// AssertNonEmptyString checks that value is a string with non-whitespace
// content and returns it.
func (e *Engine) AssertNonEmptyString(value any, opts ...Option) (string, error) {
	c := buildConstraints(opts)
	tc := c
	tc.types = []reflect.Type{stringType}
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return stringValue(value), err
	}
	s := stringValue(value)
	if strings.TrimSpace(s) != "" {
		return s, nil
	}
	return s, e.fail(KindFormatViolation, c, func(subject string) string {
		return fmt.Sprintf("'%s' must be a non-empty string", subject)
	})
}

// requireStringLike runs the string-like type check plus a minimum length.
func (e *Engine) requireStringLike(value any, c constraints, minLen int) error {
	tc := c
	tc.class = classStringLike
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return err
	}
	lc := c
	lc.minLen = &minLen
	_, err := e.validateWith(KindLength, KindLengthViolation, value, lc)
	return err
}
