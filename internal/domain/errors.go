package domain

import "errors"

// Domain errors.
var (
	ErrNoHandlerMatched    = errors.New("no handler matched the request")
	ErrHandlerActionFailed = errors.New("handler action failed")
	ErrUnknownLocale       = errors.New("unknown locale")
	ErrUnknownKey          = errors.New("unknown string key")
	ErrIncompleteLocale    = errors.New("locale is missing string keys")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrNoHandlers          = errors.New("handler list is empty")
	ErrNoErrorHandler      = errors.New("no error handler registered")
)

var codes = []struct {
	err  error
	code string
}{
	// Order matters: an action failure may wrap an unknown key.
	{ErrUnknownKey, "unknown_key"},
	{ErrUnknownLocale, "unknown_locale"},
	{ErrIncompleteLocale, "incomplete_locale"},
	{ErrInvalidRequest, "invalid_request"},
	{ErrNoHandlerMatched, "no_handler_matched"},
	{ErrHandlerActionFailed, "handler_action_failed"},
	{ErrNoHandlers, "no_handlers"},
	{ErrNoErrorHandler, "no_error_handler"},
}

// Code returns a stable snake_case code for err, "" for nil and "internal"
// for errors outside this package.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}
