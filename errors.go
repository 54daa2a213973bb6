package amqp

import "fmt"

// Error captures the reply-code/reply-text pair the broker (or this
// library) raises when a method fails, the class/method that triggered
// it, and whether the condition is recoverable without tearing down the
// whole connection.
type Error struct {
	Code    int    // reply code, see constants in spec091.go
	Reason  string // reply text
	Server  bool   // true when the server sent this, false when this library raised it locally
	Recover bool   // true if only the channel closed, the connection is still usable

	// Class/method that triggered the error, 0 when not applicable
	// (e.g. a locally-detected connection error before any reply was
	// received).
	ClassId  uint16
	MethodId uint16
}

func newError(code uint16, text string) *Error {
	return &Error{
		Code:    int(code),
		Reason:  text,
		Server:  true,
		Recover: isSoftExceptionCode(int(code)),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("Exception (%d) Reason: %q", e.Code, e.Reason)
}

// Local, non-protocol error conditions this library itself raises
// (transport failures, API misuse) that never reached the wire.
var (
	ErrClosed        = &Error{Code: ChannelError, Reason: "channel/connection is not open"}
	ErrChannelMax    = &Error{Code: NotAllowed, Reason: "out_of_channel_numbers: channel id space exhausted"}
	ErrSASL          = &Error{Code: AccessRefused, Reason: "SASL could not negotiate a shared mechanism"}
	ErrCredentials   = &Error{Code: AccessRefused, Reason: "username or password not allowed"}
	ErrVhost         = &Error{Code: NotAllowed, Reason: "no access to this vhost"}
	ErrSyntax        = &Error{Code: SyntaxError, Reason: "invalid frame syntax"}
	ErrCommandInvalid = &Error{Code: CommandInvalid, Reason: "unexpected command received"}
	ErrUnexpectedFrame = &Error{Code: FrameError, Reason: "unexpected frame type"}
	ErrFieldType     = &Error{Code: SyntaxError, Reason: "unsupported table field type"}

	// ErrChannelAlreadyRegistered is returned when two concurrent opens
	// raced onto the same channel number; distinct from ErrChannelMax,
	// which means the allocator found no number left to try at all.
	ErrChannelAlreadyRegistered = &Error{Code: NotAllowed, Reason: "channel_already_registered: number taken by a concurrent open"}

	// ErrConsumerTagInUse is returned by Consume when the client-chosen
	// consumer tag is already bound on this channel.
	ErrConsumerTagInUse = &Error{Code: NotAllowed, Reason: "consumer_tag_already_in_use"}

	// ErrBlocked is returned by a content-bearing call or cast while the
	// channel is paused by a server channel.flow{active=false}.
	ErrBlocked = &Error{Code: ResourceError, Reason: "channel blocked by flow control"}

	// ErrNotInConfirmMode is returned by WaitForConfirms before Confirm
	// has put the channel into publisher-confirm mode.
	ErrNotInConfirmMode = &Error{Code: CommandInvalid, Reason: "channel is not in confirm mode"}

	// ErrAuthFailure is returned when the socket closes during tuning,
	// almost always meaning the broker rejected the offered credentials.
	ErrAuthFailure = &Error{Code: AccessRefused, Reason: "auth_failure: socket closed during tuning"}

	// ErrAccessRefused is returned when the socket closes while waiting
	// for connection.open-ok, typically a vhost access rejection.
	ErrAccessRefused = &Error{Code: AccessRefused, Reason: "access_refused: socket closed awaiting open-ok"}
)

// ErrFrame is returned by reader.ReadFrame on a malformed frame header
// or a missing frame-end octet; it is always a hard, connection-ending
// condition since frame sync has been lost.
var ErrFrame = &Error{Code: FrameError, Reason: "frame protocol violation"}
