package sbmlerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option     { return func(e *Error) { e.Message = msg } }
func WithSeverity(s Severity) Option    { return func(e *Error) { e.Severity = s } }
func WithPackage(pkg string) Option     { return func(e *Error) { e.Package = pkg } }
func WithPosition(line, col int) Option { return func(e *Error) { e.Line, e.Column = line, col } }
