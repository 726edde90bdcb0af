package marketdata

// Index and volatility symbols
const (
	SymbolIndex = "^NSEI"
	SymbolVIX   = "^INDIAVIX"
)

// BasketSymbols is the fixed ten-symbol large-cap basket used for breadth.
// Keys in the resolved snapshot use the short name (without the .NS suffix).
var BasketSymbols = []string{
	"RELIANCE.NS",
	"TCS.NS",
	"HDFCBANK.NS",
	"ICICIBANK.NS",
	"INFY.NS",
	"HINDUNILVR.NS",
	"ITC.NS",
	"SBIN.NS",
	"BHARTIARTL.NS",
	"KOTAKBANK.NS",
}

// SectorIndices maps sector names to their index symbols
var SectorIndices = map[string]string{
	"IT":     "^CNXIT",
	"Bank":   "^NSEBANK",
	"Auto":   "^CNXAUTO",
	"Pharma": "^CNXPHARMA",
	"FMCG":   "^CNXFMCG",
	"Metal":  "^CNXMETAL",
	"Realty": "^CNXREALTY",
	"Energy": "^CNXENERGY",
	"Infra":  "^CNXINFRA",
	"Media":  "^CNXMEDIA",
}

// BasketKey strips the exchange suffix for display and snapshot keys
func BasketKey(symbol string) string {
	const suffix = ".NS"
	if len(symbol) > len(suffix) && symbol[len(symbol)-len(suffix):] == suffix {
		return symbol[:len(symbol)-len(suffix)]
	}
	return symbol
}
