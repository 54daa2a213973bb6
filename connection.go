// Copyright (c) 2012, Sean Treadway, SoundCloud Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Source code and contact info at http://github.com/streadway/amqp

package amqp

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

const defaultChannelMax = (2 << 10) - 1
const maxChannelMax = (1 << 16) - 1
const defaultLocale = "en_US"
const handshakeTimeout = 60 * time.Second

// connFlushTimeout bounds how long Close waits for the peer's
// connection.close-ok once connection.close has been sent.
const connFlushTimeout = 60 * time.Second

// connSocketCloseTimeout bounds the further wait Close allows, once
// connFlushTimeout has passed without connection.close-ok, before it
// shuts the connection down itself. When connection.close-ok does
// arrive, the connection shuts down and closes the socket at once,
// without waiting for the peer to close its end.
const connSocketCloseTimeout = 1 * time.Second

// protocolHeader is the literal 8 bytes every AMQP 0-9-1 connection opens
// with, before any framing begins.
var protocolHeader = []byte{'A', 'M', 'Q', 'P', 0, 0, 9, 1}

func defaultDial(network, addr string) (net.Conn, error) {
	return net.DialTimeout(network, addr, 30*time.Second)
}

// Connection is one AMQP 0-9-1 connection: a single TCP (or TLS) socket
// multiplexing every Channel opened on top of it. One goroutine pumps
// frames off the wire and demultiplexes them by channel number; writes
// from any channel serialize through send.
type Connection struct {
	conn io.ReadWriteCloser

	rd       *reader
	bw       *bufio.Writer
	wr       *writer
	writerMu sync.Mutex

	channels *channelsManager
	config   Config
	log      zerolog.Logger

	major, minor     int
	serverProperties Table

	channelMaxNegotiated uint16
	frameMaxNegotiated   uint32
	heartbeatInterval    time.Duration

	lastSent     atomic.Int64 // unix nanos
	lastReceived atomic.Int64

	closeMu        sync.Mutex
	closing        bool
	closeListeners []chan *Error

	done       chan struct{}
	destructor sync.Once
}

// Dial opens a connection using Config derived entirely from uri, the
// library's defaults (PLAIN auth from the URI's userinfo, the URI's
// vhost, and unbounded channel/frame negotiation), and any opts applied
// on top.
func Dial(uri string, opts ...Option) (*Connection, error) {
	return DialConfig(uri, Config{}, opts...)
}

// DialConfig opens a connection to uri. opts are applied onto config (an
// option overrides the same config field), then fields still unset are
// filled from the URI and the library's defaults. A nil config.Dial uses
// net.DialTimeout; an amqps:// scheme without an explicit
// TLSClientConfig gets a bare *tls.Config carrying the host's ServerName.
func DialConfig(uri string, config Config, opts ...Option) (*Connection, error) {
	if err := config.SetOptions(opts...); err != nil {
		return nil, err
	}

	u, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if config.SASL == nil {
		config.SASL = []Authentication{u.PlainAuth()}
	}
	if config.Vhost == "" {
		config.Vhost = u.Vhost
	}
	if config.Locale == "" {
		config.Locale = defaultLocale
	}
	if config.Dial == nil {
		config.Dial = defaultDial
	}

	addr := net.JoinHostPort(u.Host, fmt.Sprintf("%d", u.Port))

	conn, err := config.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}

	if u.Scheme == "amqps" || config.TLSClientConfig != nil {
		tlsConfig := config.TLSClientConfig
		if tlsConfig == nil {
			tlsConfig = &tls.Config{ServerName: u.Host}
		}
		client := tls.Client(conn, tlsConfig)
		if err := client.Handshake(); err != nil {
			conn.Close()
			return nil, err
		}
		conn = client
	}

	bw := bufio.NewWriter(conn)
	c := &Connection{
		conn:     conn,
		rd:       &reader{bufio.NewReader(conn)},
		bw:       bw,
		wr:       &writer{bw},
		channels: newChannelsManager(),
		config:   config,
		log:      config.Logger,
		done:     make(chan struct{}),
	}

	if err := c.open(); err != nil {
		conn.Close()
		return nil, err
	}

	go c.readLoop()
	if c.heartbeatInterval > 0 {
		go c.heartbeatLoop()
	}

	return c, nil
}

func (c *Connection) logger() *zerolog.Logger { return &c.log }
func (c *Connection) frameMax() uint32       { return c.frameMaxNegotiated }

// send serializes one frame onto the wire; every Channel funnels its
// writes through here, so this is the sole owner of the transport.
func (c *Connection) send(f frame) error {
	c.writerMu.Lock()
	defer c.writerMu.Unlock()

	if err := c.wr.WriteFrame(f); err != nil {
		return err
	}
	if err := c.bw.Flush(); err != nil {
		return err
	}
	c.lastSent.Store(nowNano())
	return nil
}

type deadliner interface {
	SetDeadline(time.Time) error
}

// open drives the literal AMQP 0-9-1 handshake: protocol header,
// connection.start/start-ok, connection.tune/tune-ok, connection.open/
// open-ok. The whole exchange is bounded by handshakeTimeout.
func (c *Connection) open() error {
	if d, ok := c.conn.(deadliner); ok {
		d.SetDeadline(time.Now().Add(handshakeTimeout))
		defer d.SetDeadline(time.Time{})
	}

	if _, err := c.conn.Write(protocolHeader); err != nil {
		return err
	}
	if err := c.bw.Flush(); err != nil {
		return err
	}

	start, err := c.readHandshakeMethod()
	if err != nil {
		return err
	}
	cs, ok := start.(*connectionStart)
	if !ok {
		return ErrCommandInvalid
	}
	if cs.VersionMajor != 0 || cs.VersionMinor != 9 {
		return newError(0, "protocol_version_mismatch")
	}
	c.major, c.minor = int(cs.VersionMajor), int(cs.VersionMinor)
	c.serverProperties = cs.ServerProperties

	auth, ok := pickSASLMechanism(c.config.SASL, splitFields(cs.Mechanisms))
	if !ok {
		return ErrSASL
	}

	props := Table{
		"product":  "amqp091",
		"platform": "Go",
	}
	for k, v := range c.config.Properties {
		props[k] = v
	}

	if err := c.writeHandshakeMethod(&connectionStartOk{
		ClientProperties: props,
		Mechanism:        auth.Mechanism(),
		Response:         auth.Response(),
		Locale:           c.config.Locale,
	}); err != nil {
		return err
	}

	tuneMsg, err := c.readHandshakeMethod()
	if err != nil {
		return ErrAuthFailure
	}
	tune, ok := tuneMsg.(*connectionTune)
	if !ok {
		return ErrCommandInvalid
	}

	c.channelMaxNegotiated = negotiateUint16(uint16(c.config.ChannelMax), tune.ChannelMax, maxChannelMax)
	c.frameMaxNegotiated = negotiateUint32(uint32(c.config.FrameSize), tune.FrameMax, 0)
	c.heartbeatInterval = negotiateHeartbeat(c.config.Heartbeat, tune.Heartbeat)
	c.channels.setMax(c.channelMaxNegotiated)

	if err := c.writeHandshakeMethod(&connectionTuneOk{
		ChannelMax: c.channelMaxNegotiated,
		FrameMax:   c.frameMaxNegotiated,
		Heartbeat:  uint16(c.heartbeatInterval / time.Second),
	}); err != nil {
		return err
	}

	if err := c.writeHandshakeMethod(&connectionOpen{VirtualHost: c.config.Vhost}); err != nil {
		return err
	}

	openOk, err := c.readHandshakeMethod()
	if err != nil {
		return ErrAccessRefused
	}
	if _, ok := openOk.(*connectionOpenOk); !ok {
		if closeMethod, ok := openOk.(*connectionClose); ok {
			return newError(closeMethod.ReplyCode, closeMethod.ReplyText)
		}
		return ErrCommandInvalid
	}

	return nil
}

func (c *Connection) writeHandshakeMethod(m message) error {
	return c.send(&methodFrame{ChannelId: 0, Method: m})
}

func (c *Connection) readHandshakeMethod() (message, error) {
	f, err := c.rd.ReadFrame()
	if err != nil {
		return nil, err
	}
	mf, ok := f.(*methodFrame)
	if !ok {
		return nil, ErrUnexpectedFrame
	}
	return mf.Method, nil
}

// readLoop owns the read half of the transport for its whole lifetime:
// it parses frames, demultiplexes by channel number, and feeds each
// channel's own recv state machine. Any parse failure or EOF ends the
// connection.
func (c *Connection) readLoop() {
	for {
		f, err := c.rd.ReadFrame()
		if err != nil {
			c.logger().Error().Err(err).Msg("amqp: connection closed by read error")
			c.broadcastAndShutdown(newError(0, "connection_error: "+err.Error()))
			return
		}
		c.lastReceived.Store(nowNano())

		if _, ok := f.(*heartbeatFrame); ok {
			continue
		}

		if f.channel() == 0 {
			mf, ok := f.(*methodFrame)
			if !ok {
				c.shutdown(ErrUnexpectedFrame)
				return
			}
			if c.dispatch0(mf.Method) {
				return
			}
			continue
		}

		ch, ok := c.channels.get(f.channel())
		if !ok {
			// Frame for an unknown or already-closed channel; nothing
			// local left to notify, so just drop it.
			continue
		}
		if err := ch.recv(ch, f); err != nil {
			c.shutdown(newError(0, "connection_error: "+err.Error()))
			return
		}
	}
}

// dispatch0 handles a method addressed to channel 0. Returns true once
// the connection has fully shut down and readLoop should exit.
func (c *Connection) dispatch0(m message) bool {
	switch mm := m.(type) {
	case *connectionClose:
		c.send(&methodFrame{ChannelId: 0, Method: &connectionCloseOk{}})
		cerr := newError(mm.ReplyCode, mm.ReplyText)
		c.logger().Error().
			Int("code", cerr.Code).
			Str("reason", cerr.Reason).
			Msg("amqp: connection closed by server")
		c.broadcastAndShutdown(cerr)
		return true

	case *connectionCloseOk:
		c.shutdown(nil)
		return true

	default:
		// Any other method on channel 0 during steady state is a
		// protocol violation; only connection.* methods are valid here.
		c.logger().Error().
			Msg("amqp: unexpected method on channel 0, closing connection")
		c.shutdown(ErrCommandInvalid)
		return true
	}
}

func (c *Connection) broadcastAndShutdown(err *Error) {
	for _, ch := range c.channels.broadcast(err) {
		ch.finalize(err)
	}
	c.shutdown(err)
}

// shutdown tears the connection down exactly once, notifying
// NotifyClose listeners with err (nil for a clean, application or
// peer-acknowledged close).
func (c *Connection) shutdown(err *Error) {
	c.destructor.Do(func() {
		close(c.done)
		c.conn.Close()

		c.closeMu.Lock()
		listeners := c.closeListeners
		c.closeMu.Unlock()

		if err != nil {
			deliverOrUnregister(c.logger(), "connection-close", 0, listeners, err)
		}
		for _, l := range listeners {
			close(l)
		}
	})
}

// Close performs a graceful shutdown: broadcast to every channel, send
// connection.close, then wait for the peer's connection.close-ok (or a
// bounded timeout) before the socket itself closes.
func (c *Connection) Close() error {
	c.closeMu.Lock()
	if c.closing {
		c.closeMu.Unlock()
		return nil
	}
	c.closing = true
	c.closeMu.Unlock()

	for _, ch := range c.channels.broadcast(nil) {
		ch.finalize(nil)
	}

	if err := c.send(&methodFrame{
		ChannelId: 0,
		Method:    &connectionClose{ReplyCode: replySuccess},
	}); err != nil {
		c.shutdown(nil)
		return err
	}

	select {
	case <-c.done:
		return nil
	case <-time.After(connFlushTimeout):
		// The peer never answered with connection.close-ok within the
		// flush cap; give it one more short window to land before
		// forcing the socket down ourselves.
	}

	select {
	case <-c.done:
	case <-time.After(connSocketCloseTimeout):
		c.shutdown(newError(0, "timed_out_waiting_close_ok"))
	}
	return nil
}

// NotifyClose registers a listener for this connection's terminal
// condition, closed (not sent to) on a clean shutdown.
func (c *Connection) NotifyClose(ch chan *Error) chan *Error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	c.closeListeners = append(c.closeListeners, ch)
	return ch
}

// Channel opens a new Channel on this connection; the channel number is
// picked on the client side by the connection's allocation policy.
func (c *Connection) Channel() (*Channel, error) {
	return c.openChannelNumbered(0)
}

func (c *Connection) openChannelNumbered(proposed uint16) (*Channel, error) {
	number, err := c.channels.allocate(proposed)
	if err != nil {
		return nil, err
	}

	ch := newChannel(c, number)
	if err := c.channels.register(number, ch); err != nil {
		return nil, err
	}

	if err := ch.open(); err != nil {
		c.channels.unregister(number)
		return nil, err
	}
	return ch, nil
}

// heartbeatLoop sends a heartbeat frame whenever nothing else has been
// written within the negotiated interval, and tears the connection down
// if nothing at all has been received within twice that interval.
func (c *Connection) heartbeatLoop() {
	tick := time.NewTicker(c.heartbeatInterval / 2)
	defer tick.Stop()

	c.lastSent.Store(nowNano())
	c.lastReceived.Store(nowNano())

	for {
		select {
		case <-c.done:
			return
		case <-tick.C:
			now := nowNano()
			if time.Duration(now-c.lastSent.Load()) >= c.heartbeatInterval {
				if err := c.send(&heartbeatFrame{}); err != nil {
					c.logger().Debug().Err(err).Msg("amqp: failed to send heartbeat")
				}
			}
			if time.Duration(now-c.lastReceived.Load()) >= 2*c.heartbeatInterval {
				c.logger().Error().Msg("amqp: closing connection on heartbeat timeout")
				c.shutdown(newError(0, "heartbeat_timeout"))
				return
			}
		}
	}
}

func nowNano() int64 { return time.Now().UnixNano() }

// negotiateUint16 applies AMQP 0-9-1's "whichever side proposes zero
// defers to the other, otherwise take the smaller" tuning rule; ceiling
// caps the result when both sides propose zero.
func negotiateUint16(client, server uint16, ceiling uint16) uint16 {
	switch {
	case client == 0 && server == 0:
		return ceiling
	case client == 0:
		return server
	case server == 0:
		return client
	case client < server:
		return client
	default:
		return server
	}
}

func negotiateUint32(client, server uint32, ceiling uint32) uint32 {
	switch {
	case client == 0 && server == 0:
		return ceiling
	case client == 0:
		return server
	case server == 0:
		return client
	case client < server:
		return client
	default:
		return server
	}
}

func negotiateHeartbeat(client time.Duration, server uint16) time.Duration {
	clientSecs := uint16(client / time.Second)
	negotiated := negotiateUint16(clientSecs, server, 0)
	return time.Duration(negotiated) * time.Second
}

func splitFields(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
