package extract

import (
	"regexp"
	"strings"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/pkg/logger"
)

var (
	boardingPassLineRe = regexp.MustCompile(`(?i)boarding\s*pass`)
	nameCharsetRe      = regexp.MustCompile(`^[A-Za-z\s.]+$`)
	nameCapitalRe      = regexp.MustCompile(`^[A-Z]`)
	nameLabelRe        = regexp.MustCompile(`(?i)(PNR|Flight|Depart|Arrive|Gate|Seat|Zone|Boarding|Time)`)
	honorificRe        = regexp.MustCompile(`(?:Mr|Mrs|Ms|MR|MRS|MS)[.\s]+([A-Za-z]+(?:\s+[A-Za-z]+){1,3})`)
	airlineCopyRe      = regexp.MustCompile(`(?i)Airline\s*Copy`)
	twoCapWordsRe      = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+`)

	pnrRe = regexp.MustCompile(`(?i)PNR[:\s]+([A-Z0-9]{5,8})`)

	flightLabelRe   = regexp.MustCompile(`(?i)Flight\s*(?:No)?[:\s]+([A-Z0-9]{2}\s*\d{1,4})`)
	flightCarrierRe = regexp.MustCompile(`\b(IX|AI|6E|SG|UK|G8|I5|QP)\s*(\d{1,4})\b`)

	airportParenRe = regexp.MustCompile(`([A-Za-z][A-Za-z\s\-0-9]+?)\s*\(([A-Z]{3})\)`)
	iataCodeRe     = regexp.MustCompile(`^[A-Z]{3}$`)
	departHintRe   = regexp.MustCompile(`(?i)Depart`)
	departBlockRe  = regexp.MustCompile(`(?is)Depart\s+([A-Za-z\s\-0-9]+?)(?:\n|Boarding|Flight|Arrive)`)
	arriveBlockRe  = regexp.MustCompile(`(?is)Arrive?\s+([A-Za-z\s\-0-9]+?)(?:\n|Departure|Flight|Gate)`)

	boardingTimeRe         = regexp.MustCompile(`(?i)Boarding\s*Time\s*[\n\r:]+\s*(\d{1,2}[.:]\d{2})\s*(?:hrs?)?`)
	departureTimeRe        = regexp.MustCompile(`(?i)Departure\s*Time\s*[\n\r:]+\s*(\d{1,2}[.:]\d{2})\s*(?:hrs?)?`)
	boardingTimeLooseRe    = regexp.MustCompile(`(?i)Boarding[\s\S]{0,30}?(\d{1,2}[.:]\d{2})\s*hrs?`)
	departureTimeLooseRe   = regexp.MustCompile(`(?i)Departure[\s\S]{0,30}?(\d{1,2}[.:]\d{2})\s*hrs?`)

	dateRe = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})`)

	gateLineRe     = regexp.MustCompile(`(?i)Gate\s*[\n\r:]+\s*([A-Z0-9]+)`)
	gateTwoDigitRe = regexp.MustCompile(`^\d{2}$`)
	gateStrictRe   = regexp.MustCompile(`(?i)Gate[:\s]+([A-Z]\d{1,3}|\d{1,2}[A-Z])`)

	seatLineRe  = regexp.MustCompile(`(?i)Seat\s*(?:No)?\s*[\n\r:]+\s*.*?(\d{1,3}[A-F])`)
	seatCleanRe = regexp.MustCompile(`(?i)Seat\s*(?:No)?[:\s]+(\d{1,3}[A-F])`)

	zoneRe     = regexp.MustCompile(`(?i)Zone[:\s]+(\d+)`)
	sequenceRe = regexp.MustCompile(`(?i)Sequence[:\s]+(\d+)`)

	cabinBaggageRe   = regexp.MustCompile(`(?i)Cabin\s*Baggage[:\s]+(\d+\s*kg[^C]*?)(?:Check|$)`)
	checkinBaggageRe = regexp.MustCompile(`(?i)Check-?in\s*Baggage[:\s]+(\d+\s*kg[^A-Z]*)`)

	fareRe   = regexp.MustCompile(`(?i)(?:Selected\s*)?Fare[:\s]*\n?\s*(\w+)`)
	addOnsRe = regexp.MustCompile(`(?i)Add\s*Ons?[:\s]+([A-Z0-9,\s]+?)(?:\s{2,}|Selected|Cabin|$)`)
)

// Extractor reconstructs a structured boarding pass record from a noisy OCR
// transcript. It is deterministic and side-effect free: the same text always
// yields the same record, and malformed input degrades to empty fields
// rather than errors.
type Extractor struct {
	logger logger.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(logger logger.Logger) *Extractor {
	return &Extractor{
		logger: logger,
	}
}

// Parse extracts every recoverable field from the transcript. Strategies for
// each field run in a fixed order and the first hit wins.
func (e *Extractor) Parse(text string) *entity.BoardingPass {
	doc := newDocument(text)

	pass := &entity.BoardingPass{RawText: text}

	pass.Name = firstMatch(doc,
		e.nameAfterBoardingPassLine,
		e.nameFromHonorific,
		e.nameNearAirlineCopy,
	)

	if m := pnrRe.FindStringSubmatch(doc.clean); m != nil {
		pass.PNR = m[1]
	}

	pass.Flight = firstMatch(doc, e.flightFromLabel, e.flightFromCarrierCode)
	pass.Airline = e.extractAirline(doc, pass.Flight)

	e.extractRoute(doc, pass)

	pass.BoardingTime = firstMatch(doc,
		timeMatcher(boardingTimeRe),
		timeMatcher(boardingTimeLooseRe),
	)
	pass.DepartureTime = firstMatch(doc,
		timeMatcher(departureTimeRe),
		timeMatcher(departureTimeLooseRe),
	)

	if m := dateRe.FindStringSubmatch(doc.clean); m != nil {
		pass.Date = m[1]
	}

	pass.Gate = firstMatch(doc, e.gateFromLine, e.gateStrict)
	pass.Seat = firstMatch(doc, e.seatFromLine, e.seatFromClean)

	if m := zoneRe.FindStringSubmatch(doc.clean); m != nil {
		pass.Zone = m[1]
	}
	if m := sequenceRe.FindStringSubmatch(doc.clean); m != nil {
		pass.Sequence = m[1]
	}

	if m := cabinBaggageRe.FindStringSubmatch(doc.clean); m != nil {
		pass.CabinBaggage = strings.TrimSpace(m[1])
	}
	if m := checkinBaggageRe.FindStringSubmatch(doc.clean); m != nil {
		pass.CheckinBaggage = strings.TrimSpace(m[1])
	}

	if m := fareRe.FindStringSubmatch(doc.clean); m != nil && !isNoiseWord(m[1]) {
		pass.Fare = m[1]
	}
	if m := addOnsRe.FindStringSubmatch(doc.clean); m != nil {
		pass.AddOns = strings.TrimSpace(m[1])
	}

	e.logger.Info("Boarding pass extracted",
		"name", pass.Name,
		"pnr", pass.PNR,
		"flight", pass.Flight,
		"route", pass.From+"-"+pass.To,
		"boardingTime", pass.BoardingTime,
		"date", pass.Date)

	return pass
}

// nameAfterBoardingPassLine scans up to two lines below a "Boarding Pass"
// heading for something that looks like a passenger name.
func (e *Extractor) nameAfterBoardingPassLine(doc *document) string {
	for i, line := range doc.lines {
		if !boardingPassLineRe.MatchString(line) {
			continue
		}
		end := i + 3
		if end > len(doc.lines) {
			end = len(doc.lines)
		}
		for j := i + 1; j < end; j++ {
			candidate := doc.lines[j]
			if len(candidate) > 4 &&
				nameCapitalRe.MatchString(candidate) &&
				!containsNoiseWord(candidate) &&
				!nameLabelRe.MatchString(candidate) &&
				nameCharsetRe.MatchString(candidate) {
				return candidate
			}
		}
		return ""
	}
	return ""
}

// nameFromHonorific picks up an Mr/Mrs/Ms prefix followed by 2-4 capitalized
// words.
func (e *Extractor) nameFromHonorific(doc *document) string {
	if m := honorificRe.FindStringSubmatch(doc.raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// nameNearAirlineCopy looks within two lines of an "Airline Copy" marker,
// where the stub usually repeats the passenger name.
func (e *Extractor) nameNearAirlineCopy(doc *document) string {
	for i, line := range doc.lines {
		if !airlineCopyRe.MatchString(line) {
			continue
		}
		start := i - 2
		if start < 0 {
			start = 0
		}
		end := i + 2
		if end > len(doc.lines)-1 {
			end = len(doc.lines) - 1
		}
		for j := start; j <= end; j++ {
			candidate := doc.lines[j]
			if len(candidate) > 4 && twoCapWordsRe.MatchString(candidate) {
				return candidate
			}
		}
		return ""
	}
	return ""
}

func (e *Extractor) flightFromLabel(doc *document) string {
	if m := flightLabelRe.FindStringSubmatch(doc.clean); m != nil {
		return strings.ReplaceAll(m[1], " ", "")
	}
	return ""
}

func (e *Extractor) flightFromCarrierCode(doc *document) string {
	if m := flightCarrierRe.FindStringSubmatch(doc.clean); m != nil {
		return m[1] + m[2]
	}
	return ""
}

// extractAirline matches known carrier names in priority order, then falls
// back to inferring the airline from the flight number's carrier code.
func (e *Extractor) extractAirline(doc *document, flight string) string {
	lower := strings.ToLower(doc.clean)
	for _, a := range airlineNames {
		if strings.Contains(lower, strings.ToLower(a.Match)) {
			return a.Name
		}
	}
	if len(flight) >= 2 {
		return carrierNames[strings.ToUpper(flight[:2])]
	}
	return ""
}

// extractRoute fills from/to and the city labels. Parenthesized IATA codes
// like "Mumbai T-2 (BOM)" are the primary signal; with only one hit the
// preceding 50 characters decide origin versus destination, and with none the
// Depart/Arrive labels provide city text alone.
func (e *Extractor) extractRoute(doc *document, pass *entity.BoardingPass) {
	type airportMatch struct {
		label string
		code  string
		index int
	}

	var matches []airportMatch
	for _, idx := range airportParenRe.FindAllStringSubmatchIndex(doc.raw, -1) {
		label := strings.TrimSpace(doc.raw[idx[2]:idx[3]])
		code := doc.raw[idx[4]:idx[5]]
		if _, known := knownAirports[code]; !known && !iataCodeRe.MatchString(code) {
			continue
		}
		matches = append(matches, airportMatch{label: label, code: code, index: idx[0]})
	}

	switch {
	case len(matches) >= 2:
		pass.FromCity = matches[0].label
		pass.From = matches[0].code
		pass.ToCity = matches[1].label
		pass.To = matches[1].code
	case len(matches) == 1:
		before := doc.raw[:matches[0].index]
		if len(before) > 50 {
			before = before[len(before)-50:]
		}
		if departHintRe.MatchString(before) {
			pass.FromCity = matches[0].label
			pass.From = matches[0].code
		} else {
			pass.ToCity = matches[0].label
			pass.To = matches[0].code
		}
	}

	if pass.From == "" {
		if m := departBlockRe.FindStringSubmatch(doc.raw); m != nil {
			pass.FromCity = strings.TrimSpace(m[1])
		}
	}
	if pass.To == "" {
		if m := arriveBlockRe.FindStringSubmatch(doc.raw); m != nil {
			pass.ToCity = strings.TrimSpace(m[1])
		}
	}
}

// timeMatcher adapts a time regexp into a matcher that normalizes the dot
// separator OCR tends to produce ("14.35" -> "14:35").
func timeMatcher(re *regexp.Regexp) matcher {
	return func(doc *document) string {
		if m := re.FindStringSubmatch(doc.raw); m != nil {
			return strings.Replace(m[1], ".", ":", 1)
		}
		return ""
	}
}

// gateFromLine rejects the "-" placeholder and bare two-digit tokens, which
// are usually fragments of a time or zone rather than a gate.
func (e *Extractor) gateFromLine(doc *document) string {
	if m := gateLineRe.FindStringSubmatch(doc.raw); m != nil {
		token := strings.TrimSpace(m[1])
		if token != "-" && !gateTwoDigitRe.MatchString(token) {
			return token
		}
	}
	return ""
}

func (e *Extractor) gateStrict(doc *document) string {
	if m := gateStrictRe.FindStringSubmatch(doc.clean); m != nil {
		return m[1]
	}
	return ""
}

func (e *Extractor) seatFromLine(doc *document) string {
	if m := seatLineRe.FindStringSubmatch(doc.raw); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

func (e *Extractor) seatFromClean(doc *document) string {
	if m := seatCleanRe.FindStringSubmatch(doc.clean); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

// IsValidBoardingPass reports whether the record carries at least one
// identifying field. Records with none are OCR noise and must not be
// persisted.
func IsValidBoardingPass(pass *entity.BoardingPass) bool {
	hasRoute := pass.From != "" || pass.To != "" || pass.FromCity != "" || pass.ToCity != ""
	hasIdentifier := pass.Flight != "" || pass.PNR != ""
	return hasIdentifier || hasRoute || pass.Name != ""
}
