package pathx

import (
	"fmt"
	"strconv"
	"strings"
)

// separator starts every suffix token.
const separator = '.'

// maxNumericProbes bounds NextFreeNumeric so a fully occupied suffix space
// terminates with ErrExhaustedSuffixSpace instead of spinning.
const maxNumericProbes = 100000

// isTokenBody reports whether a segment qualifies as the body of a suffix
// token: non-empty ASCII letters and digits. This admits format suffixes
// like "tar", "7z" and numeric sequence suffixes like "001"; it rejects
// empty segments and anything with punctuation, so version strings like
// "bar-baz" end the scan.
func isTokenBody(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// isDigits reports whether the segment is entirely ASCII digits.
func isDigits(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// splitName scans the file name from the end, peeling off trailing
// separator+segment groups while each segment qualifies as a suffix token.
// A separator at index 0 is never eligible, so hidden files like ".bashrc"
// keep their full name as the stem. Concatenating stem and tokens always
// reproduces the original name byte-for-byte.
func splitName(name string) (stem string, tokens []string) {
	end := len(name)
	for {
		i := strings.LastIndexByte(name[:end], separator)
		if i <= 0 {
			break
		}
		if !isTokenBody(name[i+1 : end]) {
			break
		}
		tokens = append(tokens, name[i:end])
		end = i
	}
	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}
	return name[:end], tokens
}

// validateToken checks that a suffix token carries its separator and a
// well-formed body.
func validateToken(token string) error {
	if len(token) < 2 || token[0] != byte(separator) || !isTokenBody(token[1:]) {
		return fmt.Errorf("suffix token %q: %w", token, ErrInvalidSuffixFormat)
	}
	return nil
}

// Suffixes returns the path's suffix tokens in original order, earliest
// first, each including its separator: "a.tar.gz.001" yields
// [".tar", ".gz", ".001"]. A name with no qualifying trailing segments
// yields nil. Tokens are returned case-preserved.
func (p Path) Suffixes() []string {
	_, tokens := splitName(p.Name())
	return tokens
}

// Stem returns the file name with all suffixes stripped.
func (p Path) Stem() string {
	stem, _ := splitName(p.Name())
	return stem
}

// Suffix returns the last suffix token, or "" when the path has none.
func (p Path) Suffix() string {
	tokens := p.Suffixes()
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

// NumericSuffix returns the integer value of the last suffix when it is
// purely numeric. Leading zeros affect display width only, not the value.
func (p Path) NumericSuffix() (int, bool) {
	token := p.Suffix()
	if token == "" || !isDigits(token[1:]) {
		return 0, false
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// WithSuffix returns a path with only the last suffix token replaced, or
// with the token appended when the path has no suffixes.
func (p Path) WithSuffix(token string) (Path, error) {
	if err := validateToken(token); err != nil {
		return Path{}, err
	}
	stem, tokens := splitName(p.Name())
	if len(tokens) > 0 {
		tokens = tokens[:len(tokens)-1]
	}
	return p.WithName(stem + strings.Join(tokens, "") + token), nil
}

// WithSuffixes returns a path with the entire suffix sequence replaced.
// Every token must carry its separator; a malformed token fails with
// ErrInvalidSuffixFormat rather than being repaired.
func (p Path) WithSuffixes(tokens []string) (Path, error) {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return Path{}, err
		}
	}
	return p.WithName(p.Stem() + strings.Join(tokens, "")), nil
}

// WithoutSuffixes returns a path with all suffixes stripped.
func (p Path) WithoutSuffixes() Path {
	return p.WithName(p.Stem())
}

// AddSuffix returns a path with the token appended as the new last suffix.
func (p Path) AddSuffix(token string) (Path, error) {
	if err := validateToken(token); err != nil {
		return Path{}, err
	}
	return p.WithName(p.Name() + token), nil
}

// IncrementNumericSuffix returns a path whose numeric last suffix is
// advanced by step. The original digit width is preserved through
// zero-padding while the new value still fits it, and expanded otherwise:
// ".009" becomes ".010", ".099" becomes ".100". Paths without a numeric
// last suffix fail with ErrNoNumericSuffix.
func (p Path) IncrementNumericSuffix(step int) (Path, error) {
	token := p.Suffix()
	if token == "" || !isDigits(token[1:]) {
		return Path{}, fmt.Errorf("%s: %w", p, ErrNoNumericSuffix)
	}
	digits := token[1:]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Path{}, fmt.Errorf("%s: parsing suffix %q: %w", p, token, ErrNoNumericSuffix)
	}
	n += step
	if n < 0 {
		return Path{}, fmt.Errorf("%s: numeric suffix would become negative: %w", p, ErrInvalidSuffixFormat)
	}
	return p.WithSuffix(fmt.Sprintf(".%0*d", len(digits), n))
}

// NextFreeNumeric returns the first numeric-suffixed sibling that the
// exists predicate reports as free, starting from the path's current
// numeric suffix, or from ".001" when it has none. Probing is capped;
// a fully occupied space fails with ErrExhaustedSuffixSpace.
func (p Path) NextFreeNumeric(exists func(Path) bool) (Path, error) {
	candidate := p
	if _, ok := p.NumericSuffix(); !ok {
		var err error
		candidate, err = p.AddSuffix(".001")
		if err != nil {
			return Path{}, err
		}
	}
	for i := 0; i < maxNumericProbes; i++ {
		if !exists(candidate) {
			return candidate, nil
		}
		var err error
		candidate, err = candidate.IncrementNumericSuffix(1)
		if err != nil {
			return Path{}, err
		}
	}
	return Path{}, fmt.Errorf("no free slot within %d candidates for %s: %w", maxNumericProbes, p, ErrExhaustedSuffixSpace)
}
