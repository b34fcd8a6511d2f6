package extract

import (
	"testing"

	"smartpass-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indigoPass = `IndiGo
Boarding Pass
Rahul Sharma
PNR: AB12CD
Flight No: 6E 202
Depart Mumbai T-2 (BOM)
Arrive New Delhi T-3 (DEL)
Date: 14 Feb 2026
Boarding Time
14.35 hrs
Departure Time
15:20 hrs
Gate
A12
Seat No
23F
Zone: 2
Sequence: 45
Selected Fare
Saver
Cabin Baggage: 7 kg
Check-in Baggage: 15 kg`

func newTestExtractor() *Extractor {
	return NewExtractor(logger.NewLogger())
}

func TestParseFullPass(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse(indigoPass)

	assert.Equal(t, "Rahul Sharma", pass.Name)
	assert.Equal(t, "AB12CD", pass.PNR)
	assert.Equal(t, "6E202", pass.Flight)
	assert.Equal(t, "IndiGo", pass.Airline)
	assert.Equal(t, "BOM", pass.From)
	assert.Contains(t, pass.FromCity, "Mumbai")
	assert.Equal(t, "DEL", pass.To)
	assert.Contains(t, pass.ToCity, "New Delhi")
	assert.Equal(t, "14:35", pass.BoardingTime)
	assert.Equal(t, "15:20", pass.DepartureTime)
	assert.Equal(t, "14 Feb 2026", pass.Date)
	assert.Equal(t, "A12", pass.Gate)
	assert.Equal(t, "23F", pass.Seat)
	assert.Equal(t, "2", pass.Zone)
	assert.Equal(t, "45", pass.Sequence)
	assert.Equal(t, "Saver", pass.Fare)
	assert.Equal(t, "7 kg", pass.CabinBaggage)
	assert.Equal(t, "15 kg", pass.CheckinBaggage)
	assert.Equal(t, indigoPass, pass.RawText)
	assert.True(t, IsValidBoardingPass(pass))
}

func TestParseIdempotent(t *testing.T) {
	e := newTestExtractor()

	first := e.Parse(indigoPass)
	second := e.Parse(indigoPass)

	assert.Equal(t, first, second)
}

func TestParseNameFromHonorific(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("Mr. Rahul Sharma 6E 202\nPNR: XY34ZT")

	assert.Equal(t, "Rahul Sharma", pass.Name)
}

func TestParseNameNearAirlineCopy(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\nPriya Patel\nAirline Copy")

	assert.Equal(t, "Priya Patel", pass.Name)
}

func TestParseNameSkipsNoiseLines(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("Boarding Pass\nUNLOCK UNLIMITED DISCOUNT\nPNR: XY34ZT")

	assert.Empty(t, pass.Name)
}

func TestParseFlightFromCarrierCode(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\n6E 202 departs shortly")

	assert.Equal(t, "6E202", pass.Flight)
	assert.Equal(t, "IndiGo", pass.Airline)
}

func TestParseAirlineNamePriority(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("Air India Express\nFlight: IX 345")

	assert.Equal(t, "Air India Express", pass.Airline)
}

func TestParseBoardingTimeDotSeparator(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\nBoarding Time\n14.35 hrs")

	assert.Equal(t, "14:35", pass.BoardingTime)
}

func TestParseSeatWithRowPrefix(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\nSeat No\nRow 23 23F")

	assert.Equal(t, "23F", pass.Seat)
}

func TestParseGateRejectsBareTwoDigits(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\nGate\n22")

	assert.Empty(t, pass.Gate)
}

func TestParseGateRejectsPlaceholder(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\nGate\n-\nSeat No\n12C")

	assert.Empty(t, pass.Gate)
	assert.Equal(t, "12C", pass.Seat)
}

func TestParseFareRejectsNoiseWord(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("PNR: XY34ZT\nSelected Fare\nXPRESS")

	assert.Empty(t, pass.Fare)
}

func TestParseRouteFromParenthesizedCodes(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("Depart\nMumbai T-2 (BOM)\nArrive\nNew Delhi (DEL)")

	assert.Equal(t, "BOM", pass.From)
	assert.Contains(t, pass.FromCity, "Mumbai")
	assert.Equal(t, "DEL", pass.To)
	assert.Contains(t, pass.ToCity, "New Delhi")
}

func TestParseRouteSingleCodeAfterDepart(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("Depart:\nGoa (GOI)")

	assert.Equal(t, "GOI", pass.From)
	assert.Equal(t, "Goa", pass.FromCity)
	assert.Empty(t, pass.To)
}

func TestParseNoiseOnlyTranscriptIsInvalid(t *testing.T) {
	e := newTestExtractor()
	pass := e.Parse("UNLOCK UNLIMITED DISCOUNT\nEXCLUSIVE MEMBER OFF")

	require.NotNil(t, pass)
	assert.Empty(t, pass.Name)
	assert.Empty(t, pass.PNR)
	assert.Empty(t, pass.Flight)
	assert.False(t, IsValidBoardingPass(pass))
}

func TestIsValidBoardingPass(t *testing.T) {
	e := newTestExtractor()

	assert.True(t, IsValidBoardingPass(e.Parse("PNR: AB12CD")))
	assert.True(t, IsValidBoardingPass(e.Parse("Flight: 6E 202")))
	assert.True(t, IsValidBoardingPass(e.Parse("Depart Mumbai (BOM)")))
	assert.False(t, IsValidBoardingPass(e.Parse("completely unrelated receipt")))
}
