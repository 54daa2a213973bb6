package amqp

import "time"

// Table holds AMQP field-table values: the application/header-exchange
// tables carried on connection.start-ok, queue/exchange arguments, and
// message headers. Values are restricted to the AMQP 0-9-1 field types
// (bool, intN, uintN, float32/64, string, []interface{}, Table,
// Decimal, time.Time, nil); []byte is not among them.
type Table map[string]interface{}

// Decimal is the AMQP decimal-value field type: value * 10^-scale.
type Decimal struct {
	Scale uint8
	Value int32
}

const (
	// Delivery modes for Properties.DeliveryMode.
	Transient  uint8 = 1
	Persistent uint8 = 2
)

// Exchange kinds recognized by every broker implementing AMQP 0-9-1.
const (
	ExchangeDirect  = "direct"
	ExchangeFanout  = "fanout"
	ExchangeTopic   = "topic"
	ExchangeHeaders = "headers"
)

// Properties are the per-message fields carried in the content-header
// frame that precedes a content-bearing method's body frames.
type Properties struct {
	ContentType     string    // MIME content type
	ContentEncoding string    // MIME content encoding
	Headers         Table     // application or header-exchange table
	DeliveryMode    uint8     // Transient or Persistent
	Priority        uint8     // queue implementation use - 0 to 9
	CorrelationId   string    // application use - correlation identifier
	ReplyTo         string    // application use - address to reply to
	Expiration      string    // implementation use - message TTL, as a string of milliseconds
	MessageId       string    // application use - message identifier
	Timestamp       time.Time // application use - message timestamp
	Type            string    // application use - message type name
	UserId          string    // application use - creating user id, validated by the broker
	AppId           string    // application use - creating application id

	reserved1 string // was cluster-id, kept only to preserve wire offsets
}

// Publishing is the content an application hands to Channel.Publish.
type Publishing struct {
	Headers Table

	ContentType     string
	ContentEncoding string
	DeliveryMode    uint8
	Priority        uint8
	CorrelationId   string
	ReplyTo         string
	Expiration      string
	MessageId       string
	Timestamp       time.Time
	Type            string
	UserId          string
	AppId           string

	Body []byte
}

// Delivery is a message pushed asynchronously to a Consumer's OnDeliver,
// or returned synchronously from Channel.Get. CancelConsumer, Ack, Nack,
// and Reject are defined in delivery.go.
type Delivery struct {
	channel *Channel

	Headers Table

	ContentType     string
	ContentEncoding string
	DeliveryMode    uint8
	Priority        uint8
	CorrelationId   string
	ReplyTo         string
	Expiration      string
	MessageId       string
	Timestamp       time.Time
	Type            string
	UserId          string
	AppId           string

	ConsumerTag  string // set for Consume deliveries; empty from Get
	MessageCount uint32 // only meaningful from Channel.Get

	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string

	Body []byte
}

// Return is a message the broker sent back because a mandatory publish
// found no queue to route to, or an immediate publish found no ready
// consumer.
type Return struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string

	ContentType     string
	ContentEncoding string
	Headers         Table
	DeliveryMode    uint8
	Priority        uint8
	CorrelationId   string
	ReplyTo         string
	Expiration      string
	MessageId       string
	Timestamp       time.Time
	Type            string
	UserId          string
	AppId           string

	Body []byte
}

// Confirmation pairs a publisher-confirm delivery tag with whether it was
// ack'd (true) or nack'd (false). The package itself produces no
// Confirmation values: WaitForConfirms reports one aggregate bool, and
// NotifyConfirm listeners receive bare tags on separate ack and nack
// channels.
type Confirmation struct {
	DeliveryTag uint64
	Ack         bool
}

// QueueState is the declared/inspected state of a queue.
type QueueState struct {
	Name          string
	MessageCount  int
	ConsumerCount int
}

func newReturn(m *basicReturn) *Return {
	p := m.Properties
	return &Return{
		ReplyCode:       m.ReplyCode,
		ReplyText:       m.ReplyText,
		Exchange:        m.Exchange,
		RoutingKey:      m.RoutingKey,
		ContentType:     p.ContentType,
		ContentEncoding: p.ContentEncoding,
		Headers:         p.Headers,
		DeliveryMode:    p.DeliveryMode,
		Priority:        p.Priority,
		CorrelationId:   p.CorrelationId,
		ReplyTo:         p.ReplyTo,
		Expiration:      p.Expiration,
		MessageId:       p.MessageId,
		Timestamp:       p.Timestamp,
		Type:            p.Type,
		UserId:          p.UserId,
		AppId:           p.AppId,
		Body:            m.Body,
	}
}

func newDelivery(c *Channel, m *basicDeliver) *Delivery {
	p := m.Properties
	return &Delivery{
		channel:         c,
		Headers:         p.Headers,
		ContentType:     p.ContentType,
		ContentEncoding: p.ContentEncoding,
		DeliveryMode:    p.DeliveryMode,
		Priority:        p.Priority,
		CorrelationId:   p.CorrelationId,
		ReplyTo:         p.ReplyTo,
		Expiration:      p.Expiration,
		MessageId:       p.MessageId,
		Timestamp:       p.Timestamp,
		Type:            p.Type,
		UserId:          p.UserId,
		AppId:           p.AppId,
		ConsumerTag:     m.ConsumerTag,
		DeliveryTag:     m.DeliveryTag,
		Redelivered:     m.Redelivered,
		Exchange:        m.Exchange,
		RoutingKey:      m.RoutingKey,
		Body:            m.Body,
	}
}

func newGetDelivery(c *Channel, m *basicGetOk) *Delivery {
	p := m.Properties
	return &Delivery{
		channel:         c,
		Headers:         p.Headers,
		ContentType:     p.ContentType,
		ContentEncoding: p.ContentEncoding,
		DeliveryMode:    p.DeliveryMode,
		Priority:        p.Priority,
		CorrelationId:   p.CorrelationId,
		ReplyTo:         p.ReplyTo,
		Expiration:      p.Expiration,
		MessageId:       p.MessageId,
		Timestamp:       p.Timestamp,
		Type:            p.Type,
		UserId:          p.UserId,
		AppId:           p.AppId,
		MessageCount:    m.MessageCount,
		DeliveryTag:     m.DeliveryTag,
		Redelivered:     m.Redelivered,
		Exchange:        m.Exchange,
		RoutingKey:      m.RoutingKey,
		Body:            m.Body,
	}
}

func publishingToProperties(msg Publishing) Properties {
	return Properties{
		Headers:         msg.Headers,
		ContentType:     msg.ContentType,
		ContentEncoding: msg.ContentEncoding,
		DeliveryMode:    msg.DeliveryMode,
		Priority:        msg.Priority,
		CorrelationId:   msg.CorrelationId,
		ReplyTo:         msg.ReplyTo,
		Expiration:      msg.Expiration,
		MessageId:       msg.MessageId,
		Timestamp:       msg.Timestamp,
		Type:            msg.Type,
		UserId:          msg.UserId,
		AppId:           msg.AppId,
	}
}
