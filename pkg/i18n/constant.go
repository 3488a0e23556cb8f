package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL            = "error.internal"
	ERROR_INVALIDARGUMENT     = "error.invalidargument"
	ERROR_TOO_MANY_REQUESTS   = "error.tooManyRequests"
	ERROR_UNAUTHORIZED        = "error.unauthorized"
	ERROR_INVALID_TOKEN       = "error.invalid.token"
	ERROR_INVALID_TOKEN_FMT   = "error.invalid.token.format"
	ERROR_INVALID_CREDENTIALS = "error.invalid.credentials"
	ERROR_FIELDS_REQUIRED     = "error.auth.fields.required"
	ERROR_USER_EXIST          = "error.auth.user.exist"
	ERROR_USER_NOTFOUND       = "error.auth.user.notfound"

	ERROR_COUNTRY_REQUIRED = "error.journal.country.required"
	ERROR_ENTRY_NOTFOUND   = "error.journal.entry.notfound"

	ERROR_COUNTRIES_FETCH  = "error.countries.fetch"
	ERROR_COUNTRY_FETCH    = "error.countries.one.fetch"
	ERROR_COUNTRY_NOTFOUND = "error.countries.notfound"
)
