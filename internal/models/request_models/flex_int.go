package request_models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number, a numeric string or "" (as 0). The web
// client sends counts and budgets in all three forms.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*f = 0
		return nil
	}

	s := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number %s", s)
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*f = 0
			return nil
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || fl != math.Trunc(fl) || math.Abs(fl) > math.MaxInt32 {
		return fmt.Errorf("%q is not a whole number", s)
	}
	*f = FlexInt(fl)
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// IntOrZero dereferences p, treating nil as 0.
func IntOrZero(p *FlexInt) int {
	if p == nil {
		return 0
	}
	return int(*p)
}
