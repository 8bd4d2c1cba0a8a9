package models

// Exchange subtypes carried by registry entries that need special suffix or
// display handling downstream.
const (
	SubtypeOTCPink   = "otc_pink"
	SubtypeOTCExpert = "otc_expert"
	SubtypeOTCQX     = "otcqx"
	SubtypeOTCQB     = "otcqb"
	SubtypeOTCBB     = "otc_bb"
	SubtypeCDI       = "cdi"
)

// Exchange is a single stock exchange known to the registry. Loaded once at
// startup and never mutated.
type Exchange struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Country string   `json:"country"`
	MIC     string   `json:"mic,omitempty"`
	Suffix  string   `json:"suffix,omitempty"`
	Subtype string   `json:"subtype,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

// ProviderInfo identifies an upstream market-data provider.
type ProviderInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
