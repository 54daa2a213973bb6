package amqp

// Ack acknowledges this delivery and, with multiple, every unacknowledged
// delivery up to and including it on the same channel.
func (d *Delivery) Ack(multiple bool) error {
	return d.channel.Ack(d.DeliveryTag, multiple)
}

// Nack negatively acknowledges this delivery; with requeue the broker
// redelivers it (elsewhere, if multiple consumers are bound) instead of
// dropping or dead-lettering it.
func (d *Delivery) Nack(multiple, requeue bool) error {
	return d.channel.Nack(d.DeliveryTag, multiple, requeue)
}

// Reject is the single-message predecessor to Nack, kept for brokers or
// callers that only implement basic.reject.
func (d *Delivery) Reject(requeue bool) error {
	return d.channel.Reject(d.DeliveryTag, requeue)
}

// CancelConsumer unsubscribes the consumer that received this delivery.
// Deliveries already in flight may still arrive after this returns.
func (d *Delivery) CancelConsumer() error {
	return d.channel.Cancel(d.ConsumerTag, false)
}
