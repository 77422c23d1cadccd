package ecb_test

import (
	"testing"
	"time"

	"github.com/rateserve/fx_rates_app/internal/apperrors"
	"github.com/rateserve/fx_rates_app/internal/ecb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<gesmes:Sender>
		<gesmes:name>European Central Bank</gesmes:name>
	</gesmes:Sender>
	<Cube>
		<Cube time="2025-07-19">
			<Cube currency="USD" rate="1.0876"/>
			<Cube currency="JPY" rate="157.83"/>
			<Cube currency="GBP" rate="0.8641"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func TestParseDailyFeed_Success(t *testing.T) {
	rates, err := ecb.ParseDailyFeed([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, rates, 3)

	wantTime := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	wantCurrencies := []string{"USD", "JPY", "GBP"}
	wantRates := []string{"1.0876", "157.83", "0.8641"}

	for i, rate := range rates {
		assert.Equal(t, "EUR", rate.CurrencyFrom)
		assert.Equal(t, wantCurrencies[i], rate.CurrencyTo)
		want, _ := decimal.NewFromString(wantRates[i])
		assert.True(t, want.Equal(rate.Rate), "rate %d: want %s got %s", i, want, rate.Rate)
		assert.True(t, wantTime.Equal(rate.RetrievedAt))
	}
}

func TestParseDailyFeed_EmptyInnerCube(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube time="2025-07-19"></Cube>
	</Cube>
</gesmes:Envelope>`

	rates, err := ecb.ParseDailyFeed([]byte(feed))
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestParseDailyFeed_MalformedXML(t *testing.T) {
	rates, err := ecb.ParseDailyFeed([]byte("this is not xml <<<"))
	require.Error(t, err)
	assert.Nil(t, rates)

	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseDailyFeed_MissingTimeCube(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube></Cube>
</gesmes:Envelope>`

	rates, err := ecb.ParseDailyFeed([]byte(feed))
	require.Error(t, err)
	assert.Nil(t, rates)

	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseDailyFeed_EmptyTimeAttributeDefaultsToNow(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube>
			<Cube currency="USD" rate="1.0876"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

	before := time.Now().UTC().Add(-time.Minute)
	rates, err := ecb.ParseDailyFeed([]byte(feed))
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.True(t, rates[0].RetrievedAt.After(before))
}

func TestParseDailyFeed_InvalidRateAttribute(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube time="2025-07-19">
			<Cube currency="USD" rate="not-a-number"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

	rates, err := ecb.ParseDailyFeed([]byte(feed))
	require.Error(t, err)
	assert.Nil(t, rates)

	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
