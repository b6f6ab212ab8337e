package application

import "voiceskill/internal/domain"

// MatchesRequestType reports whether req.Type is one of types.
func MatchesRequestType(req domain.Request, types ...domain.RequestType) bool {
	for _, t := range types {
		if req.Type == t {
			return true
		}
	}
	return false
}

// MatchesIntent reports whether req is an intent request for one of names.
func MatchesIntent(req domain.Request, names ...string) bool {
	if req.Type != domain.RequestIntentInvoked {
		return false
	}
	for _, n := range names {
		if req.IntentName == n {
			return true
		}
	}
	return false
}

func RequestTypeIs(types ...domain.RequestType) Predicate {
	return func(req domain.Request) bool {
		return MatchesRequestType(req, types...)
	}
}

func IntentIs(names ...string) Predicate {
	return func(req domain.Request) bool {
		return MatchesIntent(req, names...)
	}
}
