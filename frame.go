package amqp

import "io"

// message is implemented by every generated AMQP method struct in
// spec091.go (connectionStart, channelOpen, basicPublish, ...).
type message interface {
	id() (uint16, uint16)
	wait() bool
	read(io.Reader) error
	write(io.Writer) error
}

// messageWithContent is additionally implemented by the content-bearing
// methods: basic.publish, basic.return, basic.deliver, basic.get-ok.
type messageWithContent interface {
	message
	getContent() (Properties, []byte)
	setContent(Properties, []byte)
}

// frame is any of the four frame types the wire distinguishes by the
// leading type octet: methodFrame, headerFrame, bodyFrame, heartbeatFrame.
type frame interface {
	channel() uint16
}

type methodFrame struct {
	ChannelId uint16
	ClassId   uint16
	MethodId  uint16
	Method    message
}

func (f *methodFrame) channel() uint16 { return f.ChannelId }

type headerFrame struct {
	ChannelId  uint16
	ClassId    uint16
	weight     uint16
	Size       uint64
	Properties Properties
}

func (f *headerFrame) channel() uint16 { return f.ChannelId }

type bodyFrame struct {
	ChannelId uint16
	Body      []byte
}

func (f *bodyFrame) channel() uint16 { return f.ChannelId }

type heartbeatFrame struct {
	ChannelId uint16
}

func (f *heartbeatFrame) channel() uint16 { return f.ChannelId }

// reader wraps an io.Reader with the frame-parsing methods in read.go
// and the generated parseMethodFrame in spec091.go.
type reader struct {
	r io.Reader
}

// writer wraps an io.Writer with the frame-encoding methods in write.go.
type writer struct {
	w io.Writer
}

// Property flags, packed high bit first into the content-header frame's
// flag word. Each bit gates the presence of one Properties field.
const (
	flagContentType     = 0x8000
	flagContentEncoding = 0x4000
	flagHeaders         = 0x2000
	flagDeliveryMode    = 0x1000
	flagPriority        = 0x0800
	flagCorrelationId   = 0x0400
	flagReplyTo         = 0x0200
	flagExpiration      = 0x0100
	flagMessageId       = 0x0080
	flagTimestamp       = 0x0040
	flagType            = 0x0020
	flagUserId          = 0x0010
	flagAppId           = 0x0008
	flagReserved1       = 0x0004
)
