package calendar

// Supported diocese (national calendar) codes. The set is closed: adding
// a calendar means adding a code here and seeding its propers, not
// configuration.
const (
	DioceseUnitedStates = "united-states"
	DioceseEngland      = "england"
	DioceseItaly        = "italy"
	DioceseFrance       = "france"
	DioceseSpain        = "spain"
	DioceseGermany      = "germany"
)

// dioceseOrder fixes the declaration order returned by Dioceses.
var dioceseOrder = []string{
	DioceseUnitedStates,
	DioceseEngland,
	DioceseItaly,
	DioceseFrance,
	DioceseSpain,
	DioceseGermany,
}

// engineIdentifiers maps diocese codes to the calendar engine's country
// identifiers. The engine uses camelCase country names.
var engineIdentifiers = map[string]string{
	DioceseUnitedStates: "unitedStates",
	DioceseEngland:      "england",
	DioceseItaly:        "italy",
	DioceseFrance:       "france",
	DioceseSpain:        "spain",
	DioceseGermany:      "germany",
}

// IsSupported reports whether code names a supported national calendar.
// Matching is exact and case-sensitive: "United-States" is rejected.
func IsSupported(code string) bool {
	_, ok := engineIdentifiers[code]
	return ok
}

// EngineIdentifier maps a diocese code to the engine's country
// identifier. Unknown codes are returned unchanged; callers must guard
// with IsSupported first.
func EngineIdentifier(code string) string {
	if id, ok := engineIdentifiers[code]; ok {
		return id
	}
	return code
}

// Dioceses returns all supported codes in declaration order. The result
// is a fresh slice on every call.
func Dioceses() []string {
	out := make([]string, len(dioceseOrder))
	copy(out, dioceseOrder)
	return out
}
