// Copyright (c) 2012, Sean Treadway, SoundCloud Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Source code and contact info at http://github.com/streadway/amqp

package amqp

import (
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// listenerGrace bounds how long a fan-out to a registered listener
// channel waits before presuming the reader is gone. Chosen to be long
// enough that a busy but live consumer isn't mistaken for dead, short
// enough that one abandoned listener can't wedge the channel's single
// dispatch path for long.
const listenerGrace = 1 * time.Second

// channelCloseOkTimeout bounds how long Close waits for the broker's
// channel.close-ok before giving up and tearing the channel down anyway.
const channelCloseOkTimeout = 3 * time.Second

// 0      1         3             7                  size+7 size+8
// +------+---------+-------------+  +------------+  +-----------+
// | type | channel |     size    |  |  payload   |  | frame-end |
// +------+---------+-------------+  +------------+  +-----------+
//  octet   short         long         size octets       octet
const frameHeaderSize = 1 + 2 + 4 + 1

type channelState int

const (
	channelOpening channelState = iota
	channelStateOpen
	channelClosing
	channelClosed
)

// Lifetime bundles the durable/auto-delete pair AMQP 0-9-1 uses to
// describe how long a queue or exchange should outlive its declaring
// connection.
type Lifetime int

const (
	// UntilDeleted survives broker restarts and idle periods; declares
	// durable, not auto-deleted.
	UntilDeleted Lifetime = iota
	// UntilUnused is removed once its last binding or consumer goes
	// away; declares non-durable, auto-deleted.
	UntilUnused
	// UntilServerRestarted lives only as long as the broker process;
	// declares non-durable, not auto-deleted.
	UntilServerRestarted
)

func (l Lifetime) durable() bool    { return l == UntilDeleted }
func (l Lifetime) autoDelete() bool { return l == UntilUnused }

// channelDriver is the narrow seam between a Channel's state machine and
// however its frames actually reach the peer. The only shipped
// implementation drives a live Connection's socket; tests can supply a
// direct, in-process driver instead without touching any channel logic.
type channelDriver interface {
	send(f frame) error
	frameMax() uint32
}

type networkDriver struct {
	connection *Connection
}

func (d *networkDriver) send(f frame) error    { return d.connection.send(f) }
func (d *networkDriver) frameMax() uint32      { return d.connection.frameMax() }

// rpcResult is delivered on an rpcRequest's done channel: either a
// terminal error (write failure or channel.close) or, for a successful
// synchronous call, nothing further to do since the reply was already
// copied into the caller's result value by reflection.
type rpcResult struct {
	err error
}

// rpcRequest is one entry in a channel's single outbound FIFO. Both
// request/response calls and fire-and-forget casts (including
// basic.publish) flow through the same queue so the wire order always
// matches the order callers accepted; a synchronous head blocks the
// queue until its reply arrives, an asynchronous head is popped the
// instant its write succeeds.
type rpcRequest struct {
	method   message
	expected []message
	sync     bool
	written  bool
	done     chan *rpcResult
}

type confirmWaiter struct {
	done  chan bool
	timer *time.Timer
}

// Channel represents an AMQP channel, used for concurrent, interleaved
// publishers and consumers multiplexed over a single Connection.
type Channel struct {
	destructor sync.Once

	mu         sync.Mutex
	connection *Connection
	driver     channelDriver
	id         uint16
	state      channelState

	rpcQueue []*rpcRequest

	consumers  *consumerRegistry
	flowActive bool

	confirmMode      bool
	nextPubSeqno     uint64
	unconfirmed      map[uint64]struct{}
	onlyAcksReceived bool
	confirmWaiters   []*confirmWaiter

	closeListeners  []chan *Error
	flowListeners   []chan bool
	returnListeners []chan Return
	ackListeners    []chan uint64
	nackListeners   []chan uint64

	// Current state for frame re-assembly, only mutated from recv.
	recv    func(*Channel, frame) error
	message messageWithContent
	header  *headerFrame
	body    []byte
}

func newChannel(c *Connection, id uint16) *Channel {
	return &Channel{
		connection:  c,
		driver:      &networkDriver{connection: c},
		id:          id,
		state:       channelOpening,
		flowActive:  true,
		consumers:   newConsumerRegistry(),
		unconfirmed: map[uint64]struct{}{},
		recv:        (*Channel).recvMethod,
	}
}

func (ch *Channel) open() error {
	err := ch.rpc(&channelOpen{}, &channelOpenOk{})
	ch.mu.Lock()
	if err != nil {
		ch.state = channelClosed
	} else {
		ch.state = channelStateOpen
	}
	ch.mu.Unlock()
	return err
}

// enqueue appends req to the FIFO and drives the pump; it is the only
// way a method reaches the wire.
func (ch *Channel) enqueue(req *rpcRequest) {
	ch.mu.Lock()
	ch.rpcQueue = append(ch.rpcQueue, req)
	ch.pumpLocked()
	ch.mu.Unlock()
}

// pumpLocked writes the queue head if it hasn't been written yet, then
// advances past it immediately when it's asynchronous. A synchronous
// head stops the pump until its reply (or a channel.close) completes it
// from dispatch. Must be called with mu held.
func (ch *Channel) pumpLocked() {
	for len(ch.rpcQueue) > 0 {
		head := ch.rpcQueue[0]
		if !head.written {
			err := ch.writeMessageLocked(head.method)
			head.written = true
			if err != nil {
				ch.rpcQueue = ch.rpcQueue[1:]
				head.done <- &rpcResult{err: err}
				continue
			}
		}
		if head.sync {
			return
		}
		ch.rpcQueue = ch.rpcQueue[1:]
		head.done <- &rpcResult{}
	}
}

// writeMessageLocked puts one method (and, for content-bearing methods,
// its header and body frames) on the wire, splitting the body at
// frame_max-8 bytes per frame. Must be called with mu held.
func (ch *Channel) writeMessageLocked(msg message) error {
	if content, ok := msg.(messageWithContent); ok {
		props, body := content.getContent()
		class, _ := content.id()

		if err := ch.driver.send(&methodFrame{ChannelId: ch.id, Method: content}); err != nil {
			return err
		}
		if err := ch.driver.send(&headerFrame{
			ChannelId:  ch.id,
			ClassId:    class,
			Size:       uint64(len(body)),
			Properties: props,
		}); err != nil {
			return err
		}

		size := int(ch.driver.frameMax()) - frameHeaderSize
		if size <= 0 {
			size = len(body)
			if size == 0 {
				size = 1
			}
		}
		for i := 0; i < len(body); i += size {
			j := i + size
			if j > len(body) {
				j = len(body)
			}
			if err := ch.driver.send(&bodyFrame{ChannelId: ch.id, Body: body[i:j]}); err != nil {
				return err
			}
		}
		return nil
	}

	return ch.driver.send(&methodFrame{ChannelId: ch.id, Method: msg})
}

// rpc performs a request/response call: req is written at its turn in
// the FIFO and the call blocks until the matching reply (copied into one
// of res by reflection) or a channel.close arrives.
func (ch *Channel) rpc(req message, res ...message) error {
	return ch.rpcTimeout(0, req, res...)
}

// rpcTimeout is rpc bounded by timeout; zero means wait indefinitely.
// Once the channel has moved to channelClosing, every call is rejected
// the same way cast already rejects them, except the channelClose that
// Close itself sends to get there in the first place.
func (ch *Channel) rpcTimeout(timeout time.Duration, req message, res ...message) error {
	ch.mu.Lock()
	if ch.state == channelClosed {
		ch.mu.Unlock()
		return ErrClosed
	}
	if ch.state == channelClosing {
		if _, isClose := req.(*channelClose); !isClose {
			ch.mu.Unlock()
			return ErrClosed
		}
	}
	ch.mu.Unlock()

	r := &rpcRequest{method: req, expected: res, sync: true, done: make(chan *rpcResult, 1)}
	ch.enqueue(r)

	if timeout <= 0 {
		result := <-r.done
		return result.err
	}

	select {
	case result := <-r.done:
		return result.err
	case <-time.After(timeout):
		// r.done is buffered, so the eventual resolution from the pump
		// or a later failHead/drainQueue never blocks on this abandoned
		// read.
		return ErrClosed
	}
}

// cast performs a fire-and-forget send: it still waits its turn in the
// FIFO (so wire order matches acceptance order) but returns as soon as
// the write completes, never for a reply.
func (ch *Channel) cast(req message) error {
	ch.mu.Lock()
	if ch.state == channelClosed || ch.state == channelClosing {
		ch.mu.Unlock()
		return ErrClosed
	}
	ch.mu.Unlock()

	r := &rpcRequest{method: req, sync: false, done: make(chan *rpcResult, 1)}
	ch.enqueue(r)
	result := <-r.done
	return result.err
}

// completeHead matches an inbound reply against the current synchronous
// RPC head and, on a match, resolves it and resumes the pump. Returns
// false if msg didn't belong to any outstanding call.
func (ch *Channel) completeHead(msg message) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if len(ch.rpcQueue) == 0 {
		return false
	}
	head := ch.rpcQueue[0]
	if !head.sync {
		return false
	}

	for _, want := range head.expected {
		if reflect.TypeOf(msg) == reflect.TypeOf(want) {
			reflect.ValueOf(want).Elem().Set(reflect.ValueOf(msg).Elem())
			ch.rpcQueue = ch.rpcQueue[1:]
			head.done <- &rpcResult{}
			ch.pumpLocked()
			return true
		}
	}
	return false
}

// failHead resolves the current synchronous head with err, used when a
// channel.close arrives in place of the expected reply.
func (ch *Channel) failHead(err error) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if len(ch.rpcQueue) == 0 {
		return false
	}
	head := ch.rpcQueue[0]
	ch.rpcQueue = ch.rpcQueue[1:]
	head.done <- &rpcResult{err: err}
	return true
}

// drainQueue fails every request still queued (both the blocked sync
// head and any cast still awaiting its turn to write) with err, used on
// shutdown.
func (ch *Channel) drainQueue(err error) {
	ch.mu.Lock()
	pending := ch.rpcQueue
	ch.rpcQueue = nil
	ch.mu.Unlock()

	for _, r := range pending {
		r.done <- &rpcResult{err: err}
	}
}

// deliverOrUnregister fans v out to every listener in listeners, giving
// each up to listenerGrace to accept it. A listener that doesn't is
// presumed dead (the application stopped reading it) and is logged and
// returned in dead rather than left to wedge this channel's single
// dispatch goroutine indefinitely.
func deliverOrUnregister[T any](log *zerolog.Logger, kind string, channelID uint16, listeners []chan T, v T) (dead []chan T) {
	for _, c := range listeners {
		select {
		case c <- v:
		case <-time.After(listenerGrace):
			log.Warn().
				Str("listener", kind).
				Uint16("channel", channelID).
				Msg("amqp: unregistering dead listener sink")
			dead = append(dead, c)
		}
	}
	return dead
}

// removeChans drops every channel in dead from all, preserving order and
// any entries registered concurrently with the fan-out that produced dead.
func removeChans[T any](all, dead []chan T) []chan T {
	if len(dead) == 0 {
		return all
	}
	out := all[:0]
outer:
	for _, c := range all {
		for _, d := range dead {
			if c == d {
				continue outer
			}
		}
		out = append(out, c)
	}
	return out
}

// Eventually called via the state machine from the connection's reader
// goroutine, so assumes serialized access to everything but the fields
// also guarded by mu.
func (ch *Channel) dispatchMethod(msg message) {
	switch m := msg.(type) {
	case *channelClose:
		cerr := newError(m.ReplyCode, m.ReplyText)
		ch.driver.send(&methodFrame{ChannelId: ch.id, Method: &channelCloseOk{}})
		if !ch.failHead(cerr) {
			// No local call was waiting; this is a spontaneous server close.
		}
		var exitErr *Error
		if cerr.Code != replySuccess {
			exitErr = cerr
			ch.connection.logger().Info().
				Uint16("channel", ch.id).
				Int("code", cerr.Code).
				Str("reason", cerr.Reason).
				Msg("amqp: channel closed by server")
		}
		ch.finalize(exitErr)

	case *channelFlow:
		ch.mu.Lock()
		ch.flowActive = m.Active
		listeners := append([]chan bool(nil), ch.flowListeners...)
		ch.mu.Unlock()

		dead := deliverOrUnregister(ch.connection.logger(), "flow", ch.id, listeners, m.Active)
		if len(dead) > 0 {
			ch.mu.Lock()
			ch.flowListeners = removeChans(ch.flowListeners, dead)
			ch.mu.Unlock()
		}
		ch.cast(&channelFlowOk{Active: m.Active})

	case *basicReturn:
		ret := newReturn(m)
		ch.mu.Lock()
		listeners := append([]chan Return(nil), ch.returnListeners...)
		ch.mu.Unlock()

		dead := deliverOrUnregister(ch.connection.logger(), "return", ch.id, listeners, *ret)
		if len(dead) > 0 {
			ch.mu.Lock()
			ch.returnListeners = removeChans(ch.returnListeners, dead)
			ch.mu.Unlock()
		}

	case *basicAck:
		ch.handleConfirm(m.DeliveryTag, m.Multiple, true)

	case *basicNack:
		ch.handleConfirm(m.DeliveryTag, m.Multiple, false)

	case *basicDeliver:
		ch.mu.Lock()
		consumer, ok := ch.consumers.get(m.ConsumerTag)
		ch.mu.Unlock()
		if ok {
			consumer.OnDeliver(*newDelivery(ch, m))
		} else {
			ch.connection.logger().Warn().
				Uint16("channel", ch.id).
				Str("consumer_tag", m.ConsumerTag).
				Msg("amqp: absorbing delivery for unknown consumer tag")
		}

	case *basicCancel:
		ch.mu.Lock()
		consumer, ok := ch.consumers.get(m.ConsumerTag)
		if ok {
			ch.consumers.remove(m.ConsumerTag)
		}
		ch.mu.Unlock()
		if ok {
			consumer.OnCancel(m.ConsumerTag)
		} else {
			ch.connection.logger().Warn().
				Uint16("channel", ch.id).
				Str("consumer_tag", m.ConsumerTag).
				Msg("amqp: absorbing cancel for unknown consumer tag")
		}

	default:
		if !ch.completeHead(msg) {
			// A reply arrived that matched no outstanding call; the
			// server has misbehaved. Absorb it rather than wedge the
			// FIFO forever.
			ch.connection.logger().Warn().
				Uint16("channel", ch.id).
				Msg("amqp: dropping unmatched method reply")
		}
	}
}

func (ch *Channel) handleConfirm(tag uint64, multiple, ack bool) {
	ch.mu.Lock()
	if multiple {
		for s := range ch.unconfirmed {
			if s <= tag {
				delete(ch.unconfirmed, s)
			}
		}
	} else {
		delete(ch.unconfirmed, tag)
	}
	if !ack {
		ch.onlyAcksReceived = false
	}

	var waiters []*confirmWaiter
	result := ch.onlyAcksReceived
	if len(ch.unconfirmed) == 0 {
		waiters = ch.confirmWaiters
		ch.confirmWaiters = nil
		ch.onlyAcksReceived = true
	}
	ackListeners := append([]chan uint64(nil), ch.ackListeners...)
	nackListeners := append([]chan uint64(nil), ch.nackListeners...)
	ch.mu.Unlock()

	if ack {
		dead := deliverOrUnregister(ch.connection.logger(), "ack", ch.id, ackListeners, tag)
		if len(dead) > 0 {
			ch.mu.Lock()
			ch.ackListeners = removeChans(ch.ackListeners, dead)
			ch.mu.Unlock()
		}
	} else {
		dead := deliverOrUnregister(ch.connection.logger(), "nack", ch.id, nackListeners, tag)
		if len(dead) > 0 {
			ch.mu.Lock()
			ch.nackListeners = removeChans(ch.nackListeners, dead)
			ch.mu.Unlock()
		}
	}

	for _, w := range waiters {
		if w.timer != nil {
			w.timer.Stop()
		}
		select {
		case w.done <- result:
		default:
		}
	}
}

func (ch *Channel) transition(f func(*Channel, frame) error) error {
	ch.recv = f
	return nil
}

func (ch *Channel) recvMethod(f frame) error {
	switch fr := f.(type) {
	case *methodFrame:
		if msg, ok := fr.Method.(messageWithContent); ok {
			ch.body = make([]byte, 0)
			ch.message = msg
			return ch.transition((*Channel).recvHeader)
		}
		ch.dispatchMethod(fr.Method)
		return ch.transition((*Channel).recvMethod)

	case *headerFrame, *bodyFrame:
		return ch.transition((*Channel).recvMethod)
	}
	return ErrUnexpectedFrame
}

func (ch *Channel) recvHeader(f frame) error {
	switch fr := f.(type) {
	case *methodFrame:
		return ch.recvMethod(f)

	case *headerFrame:
		ch.header = fr
		if fr.Size == 0 {
			ch.message.setContent(fr.Properties, ch.body)
			ch.dispatchMethod(ch.message)
			return ch.transition((*Channel).recvMethod)
		}
		return ch.transition((*Channel).recvContent)

	case *bodyFrame:
		return ch.transition((*Channel).recvMethod)
	}
	return ErrUnexpectedFrame
}

func (ch *Channel) recvContent(f frame) error {
	switch fr := f.(type) {
	case *methodFrame:
		return ch.recvMethod(f)

	case *headerFrame:
		return ch.transition((*Channel).recvMethod)

	case *bodyFrame:
		ch.body = append(ch.body, fr.Body...)
		if uint64(len(ch.body)) >= ch.header.Size {
			ch.message.setContent(ch.header.Properties, ch.body)
			ch.dispatchMethod(ch.message)
			return ch.transition((*Channel).recvMethod)
		}
		return ch.transition((*Channel).recvContent)
	}
	return ErrUnexpectedFrame
}

// finalize tears the channel down exactly once: notifies close
// listeners (nil err means a clean, application-requested close),
// terminates every consumer, unregisters from the connection, and fails
// anything still queued.
func (ch *Channel) finalize(err *Error) {
	ch.destructor.Do(func() {
		ch.mu.Lock()
		ch.state = channelClosed
		listeners := ch.closeListeners
		flowListeners := ch.flowListeners
		returnListeners := ch.returnListeners
		ackListeners := ch.ackListeners
		nackListeners := ch.nackListeners
		waiters := ch.confirmWaiters
		ch.confirmWaiters = nil
		ch.mu.Unlock()

		ch.connection.channels.unregister(ch.id)
		ch.drainQueue(ErrClosed)
		ch.consumers.terminateAll(err)

		for _, w := range waiters {
			if w.timer != nil {
				w.timer.Stop()
			}
			select {
			case w.done <- false:
			default:
			}
		}

		if err != nil {
			deliverOrUnregister(ch.connection.logger(), "close", ch.id, listeners, err)
		}
		for _, c := range listeners {
			close(c)
		}
		for _, c := range flowListeners {
			close(c)
		}
		for _, c := range returnListeners {
			close(c)
		}
		for _, c := range ackListeners {
			close(c)
		}
		for _, c := range nackListeners {
			close(c)
		}
	})
}

// Close initiates a clean channel closure by sending channel.close with
// reply code 200. Calling Close twice is safe: the second call is a
// no-op that returns nil.
func (ch *Channel) Close() error {
	ch.mu.Lock()
	if ch.state == channelClosed || ch.state == channelClosing {
		ch.mu.Unlock()
		return nil
	}
	ch.state = channelClosing
	ch.mu.Unlock()

	err := ch.rpcTimeout(channelCloseOkTimeout, &channelClose{ReplyCode: replySuccess}, &channelCloseOk{})
	ch.finalize(nil)
	return err
}

// NotifyClose registers a listener for this channel's terminal
// condition. The channel is closed (not sent to) on a clean,
// application-initiated close; it receives the triggering *Error
// otherwise, then is closed.
func (ch *Channel) NotifyClose(c chan *Error) chan *Error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.closeListeners = append(ch.closeListeners, c)
	return c
}

// NotifyFlow registers a listener for server-initiated channel.flow.
// When false is sent, publishing should pause until true arrives again.
func (ch *Channel) NotifyFlow(c chan bool) chan bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.flowListeners = append(ch.flowListeners, c)
	return c
}

// NotifyReturn registers a listener for basic.return: messages the
// broker rejected from a mandatory or immediate publish.
func (ch *Channel) NotifyReturn(c chan Return) chan Return {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.returnListeners = append(ch.returnListeners, c)
	return c
}

// NotifyConfirm registers ack/nack listeners for publisher confirms; the
// value sent is the sequence number assigned at Publish time.
func (ch *Channel) NotifyConfirm(ack, nack chan uint64) (chan uint64, chan uint64) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.ackListeners = append(ch.ackListeners, ack)
	ch.nackListeners = append(ch.nackListeners, nack)
	return ack, nack
}

func (ch *Channel) Qos(prefetchCount uint16, prefetchSize uint32, global bool) error {
	return ch.rpc(
		&basicQos{PrefetchSize: prefetchSize, PrefetchCount: prefetchCount, Global: global},
		&basicQosOk{},
	)
}

// Flow requests the server pause (false) or resume (true) delivery to
// this channel. This is the client asking the server to throttle, the
// mirror image of the channel.flow the server can send unsolicited.
func (ch *Channel) Flow(active bool) error {
	return ch.rpc(&channelFlow{Active: active}, &channelFlowOk{})
}

// Recover asks the server to redeliver all unacknowledged messages on
// this channel, optionally back onto their original queue.
func (ch *Channel) Recover(requeue bool) error {
	return ch.rpc(&basicRecover{Requeue: requeue}, &basicRecoverOk{})
}

// Consume subscribes consumer to queue. A non-empty consumerTag claims
// that tag for this subscription; an empty one lets the server assign
// one (returned, and bound to consumer, once basic.consume-ok arrives),
// except under noWait where the tag must be chosen locally since there
// will be no reply to learn one from.
func (ch *Channel) Consume(queue, consumerTag string, consumer Consumer, autoAck, exclusive, noLocal, noWait bool, args Table) (string, error) {
	tag := consumerTag
	if tag == "" && noWait {
		tag = randomTag()
	}

	preRegistered := tag != ""
	if preRegistered {
		ch.mu.Lock()
		ok := ch.consumers.registerTagged(tag, consumer)
		ch.mu.Unlock()
		if !ok {
			return "", ErrConsumerTagInUse
		}
	}

	req := &basicConsume{
		Queue:       queue,
		ConsumerTag: tag,
		NoLocal:     noLocal,
		NoAck:       autoAck,
		Exclusive:   exclusive,
		NoWait:      noWait,
		Arguments:   args,
	}

	if noWait {
		if err := ch.cast(req); err != nil {
			if preRegistered {
				ch.mu.Lock()
				ch.consumers.remove(tag)
				ch.mu.Unlock()
			}
			return "", err
		}
		return tag, nil
	}

	res := &basicConsumeOk{}
	if err := ch.rpc(req, res); err != nil {
		if preRegistered {
			ch.mu.Lock()
			ch.consumers.remove(tag)
			ch.mu.Unlock()
		}
		return "", err
	}

	if !preRegistered {
		ch.mu.Lock()
		ok := ch.consumers.registerTagged(res.ConsumerTag, consumer)
		ch.mu.Unlock()
		if !ok {
			return "", ErrConsumerTagInUse
		}
	}
	consumer.OnConsumeOk(res.ConsumerTag)
	return res.ConsumerTag, nil
}

func (ch *Channel) Cancel(consumerTag string, noWait bool) error {
	res := &basicCancelOk{}
	err := ch.rpc(&basicCancel{ConsumerTag: consumerTag, NoWait: noWait}, res)

	ch.mu.Lock()
	consumer, ok := ch.consumers.get(consumerTag)
	ch.consumers.remove(consumerTag)
	ch.mu.Unlock()

	if err == nil && ok {
		consumer.OnCancelOk(consumerTag)
	}
	return err
}

func (ch *Channel) QueueDeclare(name string, lifetime Lifetime, exclusive, noWait bool, args Table) (QueueState, error) {
	req := &queueDeclare{
		Queue:      name,
		Durable:    lifetime.durable(),
		AutoDelete: lifetime.autoDelete(),
		Exclusive:  exclusive,
		NoWait:     noWait,
		Arguments:  args,
	}
	res := &queueDeclareOk{}

	if noWait {
		return QueueState{Name: name}, ch.cast(req)
	}
	if err := ch.rpc(req, res); err != nil {
		return QueueState{}, err
	}
	return QueueState{Name: res.Queue, MessageCount: int(res.MessageCount), ConsumerCount: int(res.ConsumerCount)}, nil
}

func (ch *Channel) QueueInspect(name string) (QueueState, error) {
	req := &queueDeclare{Queue: name, Passive: true}
	res := &queueDeclareOk{}
	err := ch.rpc(req, res)
	return QueueState{Name: res.Queue, MessageCount: int(res.MessageCount), ConsumerCount: int(res.ConsumerCount)}, err
}

func (ch *Channel) QueueBind(name, routingKey, exchange string, noWait bool, args Table) error {
	req := &queueBind{Queue: name, Exchange: exchange, RoutingKey: routingKey, NoWait: noWait, Arguments: args}
	if noWait {
		return ch.cast(req)
	}
	return ch.rpc(req, &queueBindOk{})
}

func (ch *Channel) QueueUnbind(name, routingKey, exchange string, args Table) error {
	return ch.rpc(
		&queueUnbind{Queue: name, Exchange: exchange, RoutingKey: routingKey, Arguments: args},
		&queueUnbindOk{},
	)
}

func (ch *Channel) QueuePurge(name string, noWait bool) (int, error) {
	req := &queuePurge{Queue: name, NoWait: noWait}
	res := &queuePurgeOk{}
	if noWait {
		return 0, ch.cast(req)
	}
	err := ch.rpc(req, res)
	return int(res.MessageCount), err
}

func (ch *Channel) QueueDelete(name string, ifUnused, ifEmpty, noWait bool) (int, error) {
	req := &queueDelete{Queue: name, IfUnused: ifUnused, IfEmpty: ifEmpty, NoWait: noWait}
	res := &queueDeleteOk{}
	if noWait {
		return 0, ch.cast(req)
	}
	err := ch.rpc(req, res)
	return int(res.MessageCount), err
}

func (ch *Channel) ExchangeDeclare(name string, lifetime Lifetime, kind string, internal, noWait bool, args Table) error {
	req := &exchangeDeclare{
		Exchange:   name,
		Type:       kind,
		Durable:    lifetime.durable(),
		AutoDelete: lifetime.autoDelete(),
		Internal:   internal,
		NoWait:     noWait,
		Arguments:  args,
	}
	if noWait {
		return ch.cast(req)
	}
	return ch.rpc(req, &exchangeDeclareOk{})
}

func (ch *Channel) ExchangeDelete(name string, ifUnused, noWait bool) error {
	req := &exchangeDelete{Exchange: name, IfUnused: ifUnused, NoWait: noWait}
	if noWait {
		return ch.cast(req)
	}
	return ch.rpc(req, &exchangeDeleteOk{})
}

func (ch *Channel) ExchangeBind(destination, routingKey, source string, noWait bool, args Table) error {
	req := &exchangeBind{Destination: destination, Source: source, RoutingKey: routingKey, NoWait: noWait, Arguments: args}
	if noWait {
		return ch.cast(req)
	}
	return ch.rpc(req, &exchangeBindOk{})
}

func (ch *Channel) ExchangeUnbind(destination, routingKey, source string, noWait bool, args Table) error {
	req := &exchangeUnbind{Destination: destination, Source: source, RoutingKey: routingKey, NoWait: noWait, Arguments: args}
	if noWait {
		return ch.cast(req)
	}
	return ch.rpc(req, &exchangeUnbindOk{})
}

// Publish sends msg to exchange under routingKey. When the channel is in
// confirm mode, the sequence number this publish takes (retrievable
// beforehand via NextPublishSeqno) is inserted into the unconfirmed set before the
// frame leaves the channel.
func (ch *Channel) Publish(exchange, routingKey string, mandatory, immediate bool, msg Publishing) error {
	ch.mu.Lock()
	if ch.state != channelStateOpen {
		ch.mu.Unlock()
		return ErrClosed
	}
	if !ch.flowActive {
		ch.mu.Unlock()
		return ErrBlocked
	}
	if ch.confirmMode {
		ch.unconfirmed[ch.nextPubSeqno] = struct{}{}
		ch.nextPubSeqno++
	}
	ch.mu.Unlock()

	return ch.cast(&basicPublish{
		Exchange:   exchange,
		RoutingKey: routingKey,
		Mandatory:  mandatory,
		Immediate:  immediate,
		Properties: publishingToProperties(msg),
		Body:       msg.Body,
	})
}

// NextPublishSeqno returns the sequence number that will be assigned to
// the next publish on this confirm-mode channel.
func (ch *Channel) NextPublishSeqno() uint64 {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.nextPubSeqno
}

// Get synchronously fetches a single message from a queue. Consume is
// preferred for anything but one-off polling.
func (ch *Channel) Get(queue string, autoAck bool) (*Delivery, bool, error) {
	req := &basicGet{Queue: queue, NoAck: autoAck}
	ok := &basicGetOk{}
	empty := &basicGetEmpty{}

	if err := ch.rpc(req, ok, empty); err != nil {
		return nil, false, err
	}
	if ok.DeliveryTag == 0 {
		return nil, false, nil
	}
	return newGetDelivery(ch, ok), true, nil
}

func (ch *Channel) Ack(tag uint64, multiple bool) error {
	return ch.cast(&basicAck{DeliveryTag: tag, Multiple: multiple})
}

func (ch *Channel) Nack(tag uint64, multiple, requeue bool) error {
	return ch.cast(&basicNack{DeliveryTag: tag, Multiple: multiple, Requeue: requeue})
}

func (ch *Channel) Reject(tag uint64, requeue bool) error {
	return ch.cast(&basicReject{DeliveryTag: tag, Requeue: requeue})
}

func (ch *Channel) TxSelect() error   { return ch.rpc(&txSelect{}, &txSelectOk{}) }
func (ch *Channel) TxCommit() error   { return ch.rpc(&txCommit{}, &txCommitOk{}) }
func (ch *Channel) TxRollback() error { return ch.rpc(&txRollback{}, &txRollbackOk{}) }

// Confirm puts this channel into publisher-confirm mode; every
// subsequent Publish is acked or nacked by the server.
func (ch *Channel) Confirm(noWait bool) error {
	if err := ch.rpc(&confirmSelect{Nowait: noWait}, &confirmSelectOk{}); err != nil {
		return err
	}
	ch.mu.Lock()
	ch.confirmMode = true
	ch.nextPubSeqno = 1
	ch.onlyAcksReceived = true
	ch.mu.Unlock()
	return nil
}

// WaitForConfirms blocks until every publish issued so far on this
// confirm-mode channel has been acked or nacked, returning false if any
// of them were nacked.
func (ch *Channel) WaitForConfirms() (bool, error) {
	return ch.waitForConfirms(0)
}

// WaitForConfirmsTimeout is WaitForConfirms bounded by timeout; on
// expiry it returns false without error, matching a nack since the
// outcome is unknown.
func (ch *Channel) WaitForConfirmsTimeout(timeout time.Duration) (bool, error) {
	return ch.waitForConfirms(timeout)
}

func (ch *Channel) waitForConfirms(timeout time.Duration) (bool, error) {
	ch.mu.Lock()
	if !ch.confirmMode {
		ch.mu.Unlock()
		return false, ErrNotInConfirmMode
	}
	if len(ch.unconfirmed) == 0 {
		result := ch.onlyAcksReceived
		ch.onlyAcksReceived = true
		ch.mu.Unlock()
		return result, nil
	}

	w := &confirmWaiter{done: make(chan bool, 1)}
	ch.confirmWaiters = append(ch.confirmWaiters, w)
	if timeout > 0 {
		w.timer = time.AfterFunc(timeout, func() {
			ch.mu.Lock()
			for i, x := range ch.confirmWaiters {
				if x == w {
					ch.confirmWaiters = append(ch.confirmWaiters[:i], ch.confirmWaiters[i+1:]...)
					break
				}
			}
			ch.mu.Unlock()
			select {
			case w.done <- false:
			default:
			}
		})
	}
	ch.mu.Unlock()

	return <-w.done, nil
}
