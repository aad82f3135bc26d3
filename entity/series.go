package entity

import (
	"bytes"
	"encoding/json"
)

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type VenueReading struct {
	Venue string
	Value float64
}

// VenuePoint is one chart point with a reading per venue. It marshals flat,
// e.g. {"date":"0","binance":2.31,"bybit":0.97}.
type VenuePoint struct {
	LabelKey string
	Label    string
	Readings []VenueReading
}

func (p VenuePoint) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, p.LabelKey, p.Label); err != nil {
		return nil, err
	}
	for _, r := range p.Readings {
		buf.WriteByte(',')
		if err := writeField(&buf, r.Venue, r.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Reading returns the value recorded for venue.
func (p VenuePoint) Reading(venue string) (float64, bool) {
	for _, r := range p.Readings {
		if r.Venue == venue {
			return r.Value, true
		}
	}
	return 0, false
}

func writeField(buf *bytes.Buffer, key string, v any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}
