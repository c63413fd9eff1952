package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a monetary value. Documents written by earlier versions of the
// tracker stored amounts as numbers, numeric strings, or null; anything
// unparseable decodes as 0 and re-encodes as a plain JSON number.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}
