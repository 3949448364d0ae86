package helper

import (
	"encoding/json"
	"strconv"
	"strings"
)

/*
Clients send ids and scores as either JSON numbers or strings; FlexInt and
FlexFloat absorb both forms at decode time so the DTOs stay typed.
- field absent        -> Present=false
- field sent as null  -> Present=true, Valid=false
- number or string    -> Present=true, Valid=true, Value set
A non-numeric string is a decode error, surfaced as a 400 by the controller.
*/
type FlexInt struct {
	Present bool  `json:"-"`
	Valid   bool  `json:"-"`
	Value   int64 `json:"-"`
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	f.Present = true
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	f.Valid = true
	f.Value = n
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f FlexInt) Int() int { return int(f.Value) }

type FlexFloat struct {
	Present bool    `json:"-"`
	Valid   bool    `json:"-"`
	Value   float64 `json:"-"`
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	f.Present = true
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.Valid = true
	f.Value = v
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
