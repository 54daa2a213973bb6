package amqp

import (
	"crypto/tls"
	"net"
	"time"

	"github.com/rs/zerolog"
)

// DialFn dials the plain TCP transport used by a Connection; DialConfig
// wraps the returned net.Conn in TLS itself when TLS is in use. The
// default implementation is net.DialTimeout("tcp", addr) with a 30s
// timeout.
type DialFn func(network, addr string) (net.Conn, error)

// Config holds the negotiable and transport-level settings for Dial and
// DialConfig, one field per row of the configuration surface: identity
// (vhost, SASL), transport (TLS, Dial), and tuning (ChannelMax, FrameSize,
// Heartbeat). Zero values mean "let the peer decide" wherever AMQP 0-9-1
// defines that negotiation (channel_max, frame_max, heartbeat each take
// the smaller of two non-zero proposals, or the other side's value when
// one side proposes zero; when both sides propose zero, channel_max
// becomes 65535 while frame_max and heartbeat stay 0, meaning no limit
// and heartbeats disabled).
type Config struct {
	// TLSClientConfig configures the TLS transport used for amqps:// URIs
	// or when SetTLS is given explicitly.
	TLSClientConfig *tls.Config

	// SASL mechanisms to offer, tried in order against the server's
	// advertised mechanisms. When nil, Dial derives a PlainAuth from the
	// URI's userinfo.
	SASL []Authentication

	// Vhost is the virtual host namespace to open. Dial sets this from
	// the URI path if left empty.
	Vhost string

	// ChannelMax caps the number of channels this connection will
	// negotiate; 0 means accept whatever the server proposes (or 65535
	// if the server also proposes 0).
	ChannelMax int

	// FrameSize caps the maximum frame size this connection will
	// negotiate; 0 means accept the server's proposal.
	FrameSize int

	// Heartbeat is the requested heartbeat interval; less than one
	// second disables the client's proposal and defers to the server.
	Heartbeat time.Duration

	// Properties are merged into the client-properties table sent in
	// connection.start-ok.
	Properties Table

	// Locale advertised in connection.start-ok; almost always "en_US".
	Locale string

	// Dial opens the underlying transport. Defaults to
	// net.DialTimeout("tcp", addr) with a 30s timeout.
	Dial DialFn

	// Logger receives structured diagnostic events (soft/hard errors,
	// absorbed non-fatal conditions, heartbeat failures). Left unset, it
	// is zerolog.Nop() and produces no output.
	Logger zerolog.Logger
}

// Option callback for connection option
type Option func(*Config) error

// SetOptions set amqp connection options
func (a *Config) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return err
		}
	}

	return nil
}

// SetTLS specifies the client configuration of the TLS connection
// when establishing a tls transport.
// If the URL uses an amqps scheme, then an empty tls.Config with the
// ServerName from the URL is used.
func SetTLS(val *tls.Config) Option {
	return func(t *Config) error {
		t.TLSClientConfig = val
		return nil
	}
}

// SetAuth The SASL mechanisms to try in the client request, and the successful
// mechanism used on the Connection object.
// If SASL is nil, PlainAuth from the URL is used.
func SetAuth(val []Authentication) Option {
	return func(t *Config) error {
		t.SASL = val
		return nil
	}
}

// SetVhost specifies the namespace of permissions, exchanges, queues and
// bindings on the server.  Dial sets this to the path parsed from the URL.
func SetVhost(val string) Option {
	return func(t *Config) error {
		t.Vhost = val
		return nil
	}
}

// SetChannelMax 0 max channels takes the server's value, or 2^16 - 1 if
// the server also proposes 0
func SetChannelMax(val int) Option {
	return func(t *Config) error {
		t.ChannelMax = val
		return nil
	}
}

// SetFrameSize 0 max bytes takes the server's value, or unlimited if the
// server also proposes 0
func SetFrameSize(val int) Option {
	return func(t *Config) error {
		t.FrameSize = val
		return nil
	}
}

// SetHeartbeat ess than 1s uses the server's interval
func SetHeartbeat(val time.Duration) Option {
	return func(t *Config) error {
		t.Heartbeat = val
		return nil
	}
}

// SetProperties is table of properties that the client advertises to the server.
// This is an optional setting - if the application does not set this,
// the underlying library will use a generic set of client properties.
func SetProperties(val Table) Option {
	return func(t *Config) error {
		t.Properties = val
		return nil
	}
}

// SetLocale locale that we expect to always be en_US
// Even though servers must return it as per the AMQP 0-9-1 spec,
// we are not aware of it being used other than to satisfy the spec requirements
func SetLocale(val string) Option {
	return func(t *Config) error {
		t.Locale = val
		return nil
	}
}

// SetDial sets callback which returns a net.Conn prepared for a TLS handshake with TSLClientConfig,
// then an AMQP connection handshake.
func SetDial(val DialFn) Option {
	return func(t *Config) error {
		t.Dial = val
		return nil
	}
}

// SetLogger installs a zerolog.Logger that this connection and its
// channels log diagnostic events to. Unset, logging is silent.
func SetLogger(val zerolog.Logger) Option {
	return func(t *Config) error {
		t.Logger = val
		return nil
	}
}
