package amqp

// Consumer is the polymorphic sink a Channel delivers per-subscription
// events to. It plays the role the teacher's Notify* channels play for
// connection/channel-wide events, generalized to the richer per-consumer
// lifecycle this library tracks: pending subscribe, active delivery,
// cancellation, and termination.
//
// A Channel invokes OnDeliver and OnCancel from the connection's single
// reader goroutine, so those two never run concurrently with each other;
// they must not block for long or they stall every other consumer and
// RPC on that channel. OnConsumeOk and OnCancelOk run on the goroutine
// that called Consume or Cancel, and OnTerminate on whichever goroutine
// closes the channel, so these can run concurrently with OnDeliver.
type Consumer interface {
	// OnConsumeOk fires once, when basic.consume_ok names this
	// subscription's definitive server-assigned tag.
	OnConsumeOk(tag string)

	// OnCancelOk fires when a client-initiated Channel.Cancel completes.
	OnCancelOk(tag string)

	// OnCancel fires when the server unilaterally cancels the
	// subscription (queue deleted, etc).
	OnCancel(tag string)

	// OnDeliver fires for every basic.deliver routed to this tag.
	OnDeliver(d Delivery)

	// OnInfo carries non-fatal, informational conditions. Channel itself
	// never calls it: a delivery or cancel for an unknown tag is logged
	// instead.
	OnInfo(msg string)

	// OnCall answers a synchronous request addressed to the consumer.
	// Channel itself never calls it; Consumers that take no such
	// requests can leave this a no-op.
	OnCall(req interface{}) (reply interface{})

	// OnTerminate fires once, when the channel closes or the connection
	// is lost while the consumer is still registered. err is nil for a
	// clean close. A consumer removed by Cancel or by a server
	// basic.cancel gets OnCancelOk or OnCancel instead and is not
	// terminated.
	OnTerminate(err *Error)
}

// ForwardingConsumer is the built-in Consumer that relays deliveries onto
// application-owned channels, the shape most callers want: read
// deliveries off Deliveries, and learn of termination from Done. Cancel,
// info and call events are discarded.
type ForwardingConsumer struct {
	Deliveries chan Delivery
	Done       chan *Error

	tag string
}

// NewForwardingConsumer allocates a ForwardingConsumer with the given
// delivery buffer depth.
func NewForwardingConsumer(buffer int) *ForwardingConsumer {
	return &ForwardingConsumer{
		Deliveries: make(chan Delivery, buffer),
		Done:       make(chan *Error, 1),
	}
}

func (f *ForwardingConsumer) OnConsumeOk(tag string) { f.tag = tag }
func (f *ForwardingConsumer) OnCancelOk(tag string)  {}
func (f *ForwardingConsumer) OnCancel(tag string)    {}
func (f *ForwardingConsumer) OnDeliver(d Delivery)   { f.Deliveries <- d }
func (f *ForwardingConsumer) OnInfo(msg string)      {}
func (f *ForwardingConsumer) OnCall(req interface{}) (reply interface{}) {
	return nil
}
func (f *ForwardingConsumer) OnTerminate(err *Error) {
	close(f.Deliveries)
	f.Done <- err
	close(f.Done)
}

// consumerRegistry is the per-channel {tag -> Consumer} map. Spec §9's
// open question about ordering of concurrent tag-less subscribes
// (recommended resolution: serialize them) is resolved structurally:
// Channel's single RPC FIFO already serializes every basic.consume, so
// the reply that names a server-generated tag always comes back bound
// to the exact call that requested it, before the next subscribe is even
// written to the wire. No separate anonymous-tag bookkeeping is needed.
type consumerRegistry struct {
	byTag map[string]Consumer
}

func newConsumerRegistry() *consumerRegistry {
	return &consumerRegistry{byTag: map[string]Consumer{}}
}

func (r *consumerRegistry) registerTagged(tag string, c Consumer) bool {
	if _, exists := r.byTag[tag]; exists {
		return false
	}
	r.byTag[tag] = c
	return true
}

func (r *consumerRegistry) get(tag string) (Consumer, bool) {
	c, ok := r.byTag[tag]
	return c, ok
}

func (r *consumerRegistry) remove(tag string) {
	delete(r.byTag, tag)
}

// terminateAll notifies and unregisters every consumer, used on channel
// close or connection loss.
func (r *consumerRegistry) terminateAll(err *Error) {
	for tag, c := range r.byTag {
		c.OnTerminate(err)
		delete(r.byTag, tag)
	}
}
