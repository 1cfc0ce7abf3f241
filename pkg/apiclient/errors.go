package apiclient

import "errors"

// Kind classifies a client error. Every failure returned by Client carries
// exactly one kind, so callers can branch without string matching.
type Kind int

const (
	// KindValidation is a rejected request: missing or empty required fields.
	KindValidation Kind = iota + 1
	// KindAuth is a bad-credentials failure.
	KindAuth
	// KindConflict is a uniqueness violation, e.g. a taken username.
	KindConflict
	// KindNotFound means the target id does not exist or is not owned by the
	// requesting user. The server does not distinguish the two cases.
	KindNotFound
	// KindNetwork is a transport failure before any HTTP response arrived.
	KindNetwork
	// KindServer is a 5xx or a malformed response body.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// NetworkErrMessage is the fixed user-visible message for transport
// failures, deliberately distinct from any server-provided message.
const NetworkErrMessage = "cannot reach server"

// Error is the typed error returned by every Client operation.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int // 0 for network failures
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

func IsValidation(err error) bool { return IsKind(err, KindValidation) }
func IsAuth(err error) bool       { return IsKind(err, KindAuth) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
func IsNetwork(err error) bool    { return IsKind(err, KindNetwork) }
func IsServer(err error) bool     { return IsKind(err, KindServer) }
