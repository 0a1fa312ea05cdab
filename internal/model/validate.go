package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Numeric is a numeric input kept as the client sent it, so that
// {"duration": 30}, {"duration": "30"} and duration=30 (form) all bind.
// It is parsed during Validate, where a bad value becomes a field error
// instead of a body decoding failure.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
	default:
		*n = Numeric(data)
	}
	return nil
}

// UnmarshalParam lets echo bind Numeric from form and query values.
func (n *Numeric) UnmarshalParam(param string) error {
	*n = Numeric(param)
	return nil
}

// PositiveInt parses n as an integer in [1, math.MaxInt32], the range of
// the postgres INTEGER duration column.
func (n Numeric) PositiveInt() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(string(n)))
	if err != nil || v < 1 || v > math.MaxInt32 {
		return 0, false
	}
	return v, true
}
