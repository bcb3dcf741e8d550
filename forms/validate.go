package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ErrValidation = errors.New("forms: validation failed")

// Validator validates one submitted field value.
type Validator interface {
	Validate(value string) error
}

// Func adapts a function into a Validator.
type Func func(value string) error

func (f Func) Validate(value string) error {
	return f(value)
}

type required struct{}

func (required) Validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: value required", ErrValidation)
	}
	return nil
}

func Required() Validator {
	return required{}
}

type minLen int

func (m minLen) Validate(value string) error {
	if utf8.RuneCountInString(value) < int(m) {
		return fmt.Errorf("%w: shorter than %d characters", ErrValidation, int(m))
	}
	return nil
}

func MinLen(n int) Validator {
	return minLen(n)
}

type maxLen int

func (m maxLen) Validate(value string) error {
	if utf8.RuneCountInString(value) > int(m) {
		return fmt.Errorf("%w: longer than %d characters", ErrValidation, int(m))
	}
	return nil
}

func MaxLen(n int) Validator {
	return maxLen(n)
}

type matches struct {
	re *regexp.Regexp
}

func (m matches) Validate(value string) error {
	if !m.re.MatchString(value) {
		return fmt.Errorf("%w: does not match %s", ErrValidation, m.re)
	}
	return nil
}

// Matches validates against a regular expression. The pattern is part of the
// form's configuration, so a bad one panics at the point of misuse.
func Matches(pattern string) Validator {
	return matches{re: regexp.MustCompile(pattern)}
}
