package web

import (
	"maps"

	"codeberg.org/mutker/errschema/internal/location"
	"codeberg.org/mutker/errschema/schema"
)

// Option customizes a record built by a factory.
type Option func(*options)

type options struct {
	msg     string
	uiMsg   string
	cause   error
	loc     Loc
	input   map[string]any
	autoLoc bool
}

// WithMsg replaces the developer message. Without WithUIMsg it also becomes
// the end-user message.
func WithMsg(msg string) Option {
	return func(o *options) {
		o.msg = msg
	}
}

// WithUIMsg replaces the end-user message.
func WithUIMsg(msg string) Option {
	return func(o *options) {
		o.uiMsg = msg
	}
}

// WithCause appends the cause's text to the developer message only.
func WithCause(err error) Option {
	return func(o *options) {
		o.cause = err
	}
}

func WithLoc(segments ...Segment) Option {
	return func(o *options) {
		o.loc = append(Loc{}, segments...)
	}
}

// WithInput echoes the offending input. The map is copied.
func WithInput(input map[string]any) Option {
	return func(o *options) {
		o.input = maps.Clone(input)
	}
}

// AutoLoc sets the location to the calling function, as
// "file:line:function", unless WithLoc is also given.
func AutoLoc() Option {
	return func(o *options) {
		o.autoLoc = true
	}
}

// build resolves the messages in priority order: msg is WithMsg, then
// defaultMsg; ui_msg is WithUIMsg, then WithMsg, then defaultUIMsg.
func build(c schema.Category, defaultMsg, defaultUIMsg string, opts []Option) ErrorSchema {
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

	uiMsg := defaultUIMsg
	switch {
	case o.uiMsg != "":
		uiMsg = o.uiMsg
	case o.msg != "":
		uiMsg = o.msg
	}

	loc := o.loc.Clone()
	if o.autoLoc && len(o.loc) == 0 {
		if caller := location.Caller(); caller != "" {
			loc = Loc{Key(caller)}
		}
	}

	return ErrorSchema{
		ErrorSchema: schema.ErrorSchema{Type: c, Msg: msg},
		UIMsg:       uiMsg,
		Loc:         loc,
		Input:       cloneInput(o.input),
	}
}
