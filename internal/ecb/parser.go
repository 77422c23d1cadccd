package ecb

import (
	"encoding/xml"
	"time"

	"github.com/rateserve/fx_rates_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the base of every quote in the ECB feed.
const BaseCurrency = "EUR"

const cubeTimeLayout = "2006-01-02"

// Rate is one parsed feed record, before persistence.
type Rate struct {
	CurrencyFrom string
	CurrencyTo   string
	Rate         decimal.Decimal
	RetrievedAt  time.Time
}

// The feed is a gesmes Envelope whose default-namespace Cube wrapper holds one
// time-bearing Cube, which holds one leaf Cube per currency. encoding/xml
// matches the unqualified names below against the document's default
// namespace.
type feedEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Cube    feedCubeWrap `xml:"Cube"`
}

type feedCubeWrap struct {
	TimeCubes []feedTimeCube `xml:"Cube"`
}

type feedTimeCube struct {
	Time  string         `xml:"time,attr"`
	Rates []feedRateCube `xml:"Cube"`
}

type feedRateCube struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// ParseDailyFeed converts a raw feed payload into the ordered sequence of rate
// records it declares, one per leaf cube, in document order. An empty inner
// cube yields an empty slice. A document without the time-bearing inner cube
// is malformed and yields a ParseError; a present cube with an empty time
// attribute defaults to the current instant.
func ParseDailyFeed(data []byte) ([]Rate, error) {
	var env feedEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, &apperrors.ParseError{Msg: "malformed XML document", Err: err}
	}

	if len(env.Cube.TimeCubes) == 0 {
		return nil, &apperrors.ParseError{Msg: "feed has no time-bearing Cube element"}
	}
	timeCube := env.Cube.TimeCubes[0]

	retrievedAt := time.Now().UTC().Truncate(time.Second)
	if timeCube.Time != "" {
		parsed, err := time.Parse(cubeTimeLayout, timeCube.Time)
		if err != nil {
			return nil, &apperrors.ParseError{Msg: "invalid time attribute '" + timeCube.Time + "'", Err: err}
		}
		retrievedAt = parsed
	}

	rates := make([]Rate, 0, len(timeCube.Rates))
	for _, cube := range timeCube.Rates {
		value, err := decimal.NewFromString(cube.Rate)
		if err != nil {
			return nil, &apperrors.ParseError{Msg: "invalid rate attribute '" + cube.Rate + "' for currency " + cube.Currency, Err: err}
		}
		rates = append(rates, Rate{
			CurrencyFrom: BaseCurrency,
			CurrencyTo:   cube.Currency,
			Rate:         value,
			RetrievedAt:  retrievedAt,
		})
	}

	return rates, nil
}
