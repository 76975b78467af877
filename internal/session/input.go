package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// QuitToken ends the session.
const QuitToken = "q"

// ErrInvalidNumber is returned when an operand cannot be parsed.
var ErrInvalidNumber = errors.New("invalid number")

// normalizer lower-cases command tokens independent of the user's locale.
type normalizer struct {
	caser cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{caser: cases.Lower(language.Und)}
}

func (n *normalizer) command(line string) string {
	return n.caser.String(strings.TrimSpace(line))
}

// parseOperand converts a line into an operand. Unless allowDecimal is set
// only base-10 integers are accepted.
func parseOperand(line string, allowDecimal bool) (float64, error) {
	token := strings.TrimSpace(line)

	if !allowDecimal {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
		}

		return float64(n), nil
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}

	return v, nil
}
