package domain

// ErrorKind classifies failures so the HTTP layer can pick a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindUpstreamParse
	KindDatabase
	KindSubprocess
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUpstreamParse:
		return "upstream_parse"
	case KindDatabase:
		return "database"
	case KindSubprocess:
		return "subprocess"
	default:
		return "internal"
	}
}

// Error is a classified application error. Message is safe to show clients.
type Error struct {
	Err     error
	Message string
	Details string
	Kind    ErrorKind
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewUpstreamParseError(msg string, err error) *Error {
	return &Error{Kind: KindUpstreamParse, Message: msg, Err: err}
}

func NewDatabaseError(msg string, err error) *Error {
	return &Error{Kind: KindDatabase, Message: msg, Err: err}
}

func NewSubprocessError(msg, details string, err error) *Error {
	return &Error{Kind: KindSubprocess, Message: msg, Details: details, Err: err}
}

func NewInternalError(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
