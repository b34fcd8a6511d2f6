package extract

// noiseWords are layout, marketing and advisory tokens that appear on
// Indian-carrier boarding passes and must never be taken for a passenger
// name or fare class.
var noiseWords = []string{
	"UNLOCK", "UNLIMITED", "DISCOUNT", "OFF", "ADD-ONS", "MEMBER",
	"EXCLUSIVE", "DANGEROUS", "GOODS", "EXPLOSIVES", "FLAMMABLE",
	"TOXIC", "CORROSIVE", "RADIOACTIVE", "INFECTIOUS", "BOOKING",
	"BOARDING", "PASS", "AVIATOR", "EXPRESS", "AIRLINE", "COPY",
	"SECURITY", "MANDATORY", "PLEASE", "MINISTRY", "CIVIL", "AVIATION",
	"AIRSEWA", "STANDARD", "PRIME", "SEATS", "GOURMET", "HOT", "MEALS",
	"XPRESS", "AHEAD", "PRIORITY", "SERVICES", "XCESS", "XTRA",
}

// knownAirports maps IATA codes commonly seen on these passes to city names.
var knownAirports = map[string]string{
	"BOM": "Mumbai", "DEL": "New Delhi", "BLR": "Bengaluru", "HYD": "Hyderabad",
	"MAA": "Chennai", "CCU": "Kolkata", "GOI": "Goa", "COK": "Kochi",
	"AMD": "Ahmedabad", "PNQ": "Pune", "JAI": "Jaipur", "GAU": "Guwahati",
	"IXC": "Chandigarh", "TRV": "Thiruvananthapuram", "PAT": "Patna",
	"LKO": "Lucknow", "IXB": "Bagdogra", "VNS": "Varanasi", "IXR": "Ranchi",
	"SXR": "Srinagar", "DED": "Dehradun", "IXA": "Agartala", "RPR": "Raipur",
	"BBI": "Bhubaneswar", "IDR": "Indore", "NAG": "Nagpur", "VTZ": "Visakhapatnam",
	"IXM": "Madurai", "CJB": "Coimbatore", "IXE": "Mangaluru", "STV": "Surat",
	"JDH": "Jodhpur", "UDR": "Udaipur", "DUB": "Dubai", "SHJ": "Sharjah",
	"DOH": "Doha", "SIN": "Singapore", "BKK": "Bangkok", "KUL": "Kuala Lumpur",
	"LHR": "London", "JFK": "New York", "SFO": "San Francisco",
}

// airlineNames is checked in declaration order: more specific names first,
// so "Air India Express" wins over "Air India".
var airlineNames = []struct {
	Match string
	Name  string
}{
	{"Air India Express", "Air India Express"},
	{"Air India", "Air India"},
	{"IndiGo", "IndiGo"},
	{"SpiceJet", "SpiceJet"},
	{"Vistara", "Vistara"},
	{"Akasa", "Akasa Air"},
	{"Go First", "Go First"},
}

// carrierNames maps two-character carrier codes to airline names, used when
// the text never spells the airline out.
var carrierNames = map[string]string{
	"IX": "Air India Express",
	"AI": "Air India",
	"6E": "IndiGo",
	"SG": "SpiceJet",
	"UK": "Vistara",
	"QP": "Akasa Air",
}

// CarrierName resolves a two-character carrier code to an airline name.
// Returns "" for unknown codes.
func CarrierName(code string) string {
	return carrierNames[code]
}

// AirportCity resolves an IATA code to a city name. Returns "" for codes
// outside the curated table.
func AirportCity(code string) string {
	return knownAirports[code]
}
