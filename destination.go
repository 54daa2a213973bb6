// Copyright (c) 2012, Sean Treadway, SoundCloud Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Source code and contact info at http://github.com/streadway/amqp

package amqp

import (
	"fmt"
	"net/url"
	"strings"
)

// DestinationKind distinguishes the text-form routing endpoints that
// ParseDestination recognizes.
type DestinationKind int

const (
	DestinationQueue DestinationKind = iota
	DestinationExchange
	DestinationTopic
	DestinationAMQQueue
	DestinationTempQueue
	DestinationReplyQueue
)

// Destination is the structured form of a `/exchange/<name>/<pattern>`
// style text endpoint, the way many AMQP-based messaging layers let
// applications name a routing target without touching Channel directly.
type Destination struct {
	Kind    DestinationKind
	Name    string
	Pattern string // only meaningful for DestinationExchange
}

// ParseDestination parses one of:
//
//	/exchange/<name>[/<pattern>]
//	/topic/<name>
//	/queue/<name>
//	/amq/queue/<name>
//	/temp-queue/<name>
//	/reply-queue/<name>
//	<name>                          (bare name, a queue)
//
// Percent-encoded "%2F" decodes to "/" within a segment.
func ParseDestination(s string) (Destination, error) {
	if !strings.HasPrefix(s, "/") {
		name, err := url.QueryUnescape(s)
		if err != nil {
			return Destination{}, err
		}
		return Destination{Kind: DestinationQueue, Name: name}, nil
	}

	parts := strings.Split(s, "/")[1:] // drop the leading empty segment

	decode := func(seg string) (string, error) {
		return url.QueryUnescape(seg)
	}

	switch {
	case len(parts) >= 2 && parts[0] == "exchange":
		name, err := decode(parts[1])
		if err != nil {
			return Destination{}, err
		}
		var pattern string
		if len(parts) >= 3 {
			if pattern, err = decode(strings.Join(parts[2:], "/")); err != nil {
				return Destination{}, err
			}
		}
		return Destination{Kind: DestinationExchange, Name: name, Pattern: pattern}, nil

	case len(parts) >= 2 && parts[0] == "topic":
		name, err := decode(parts[1])
		if err != nil {
			return Destination{}, err
		}
		return Destination{Kind: DestinationTopic, Name: name}, nil

	case len(parts) >= 2 && parts[0] == "queue":
		name, err := decode(parts[1])
		if err != nil {
			return Destination{}, err
		}
		return Destination{Kind: DestinationQueue, Name: name}, nil

	case len(parts) >= 3 && parts[0] == "amq" && parts[1] == "queue":
		name, err := decode(parts[2])
		if err != nil {
			return Destination{}, err
		}
		return Destination{Kind: DestinationAMQQueue, Name: name}, nil

	case len(parts) >= 2 && parts[0] == "temp-queue":
		name, err := decode(parts[1])
		if err != nil {
			return Destination{}, err
		}
		return Destination{Kind: DestinationTempQueue, Name: name}, nil

	case len(parts) >= 2 && parts[0] == "reply-queue":
		name, err := decode(parts[1])
		if err != nil {
			return Destination{}, err
		}
		return Destination{Kind: DestinationReplyQueue, Name: name}, nil
	}

	return Destination{}, fmt.Errorf("amqp: unrecognized destination %q", s)
}

// String formats a Destination back to its canonical text form, the
// inverse of ParseDestination.
func (d Destination) String() string {
	esc := url.QueryEscape

	switch d.Kind {
	case DestinationExchange:
		if d.Pattern != "" {
			return fmt.Sprintf("/exchange/%s/%s", esc(d.Name), esc(d.Pattern))
		}
		return fmt.Sprintf("/exchange/%s", esc(d.Name))
	case DestinationTopic:
		return fmt.Sprintf("/topic/%s", esc(d.Name))
	case DestinationAMQQueue:
		return fmt.Sprintf("/amq/queue/%s", esc(d.Name))
	case DestinationTempQueue:
		return fmt.Sprintf("/temp-queue/%s", esc(d.Name))
	case DestinationReplyQueue:
		return fmt.Sprintf("/reply-queue/%s", esc(d.Name))
	default:
		return fmt.Sprintf("/queue/%s", esc(d.Name))
	}
}
