// Copyright (c) 2012, Sean Treadway, SoundCloud Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Source code and contact info at http://github.com/streadway/amqp

package amqp

import (
	"github.com/lithammer/shortuuid/v3"
)

// randomTag generates the consumer tag for a noWait Consume that was given
// none: no basic.consume_ok will come back to name a server-assigned tag,
// so the client picks this one, sends it in basic.consume and keys the
// consumer registry by it.
func randomTag() string {
	return "ctag-" + shortuuid.New()
}

// correlationId generates an RPC correlation id for methods that carry
// one as an application-level field (none in the core AMQP method
// table do today, but Publishing.CorrelationId often wants a default).
func correlationId() string {
	return shortuuid.New()
}

