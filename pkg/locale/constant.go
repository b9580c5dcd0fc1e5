package locale

// Supported languages
const (
	EN = "en" // English
	VI = "vi" // Vietnamese
	JA = "ja" // Japanese
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = EN

// LangList contains all supported language codes.
var LangList = []string{EN, VI, JA}
