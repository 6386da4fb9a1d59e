package schema

// Option customizes a record built by a factory.
type Option func(*options)

type options struct {
	msg   string
	cause error
}

// WithMsg replaces the default message. An empty message keeps the default.
func WithMsg(msg string) Option {
	return func(o *options) {
		o.msg = msg
	}
}

// WithCause appends the cause's text to the message in parentheses.
func WithCause(err error) Option {
	return func(o *options) {
		o.cause = err
	}
}

func build(c Category, defaultMsg string, opts []Option) ErrorSchema {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	msg := defaultMsg
	if o.msg != "" {
		msg = o.msg
	}
	if o.cause != nil {
		msg += " (" + o.cause.Error() + ")"
	}

	return ErrorSchema{Type: c, Msg: msg}
}
