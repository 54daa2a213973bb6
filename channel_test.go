package amqp

import "testing"

// a driver that accepts and discards every frame; used to exercise
// Channel's RPC gating without a live connection.
type noopDriver struct{}

func (noopDriver) send(f frame) error { return nil }
func (noopDriver) frameMax() uint32   { return 0 }

func TestChannelRpcRejectedWhileClosing(t *testing.T) {
	ch := newChannel(&Connection{}, 1)
	ch.driver = noopDriver{}
	ch.state = channelStateOpen

	ch.mu.Lock()
	ch.state = channelClosing
	ch.mu.Unlock()

	if err := ch.rpc(&basicQos{PrefetchCount: 1}, &basicQosOk{}); err != ErrClosed {
		t.Fatalf("rpc during channelClosing = %v, want ErrClosed", err)
	}
}

func TestChannelCastRejectedWhileClosing(t *testing.T) {
	ch := newChannel(&Connection{}, 1)
	ch.driver = noopDriver{}
	ch.state = channelClosing

	if err := ch.cast(&basicAck{DeliveryTag: 1}); err != ErrClosed {
		t.Fatalf("cast during channelClosing = %v, want ErrClosed", err)
	}
}
