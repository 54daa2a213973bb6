// Copyright (c) 2012, Sean Treadway, SoundCloud Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Source code and contact info at http://github.com/streadway/amqp

package amqp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// WriteFrame serializes one frame onto the wire: a 7 octet header, the
// type-specific payload, and the frame-end octet.
func (w *writer) WriteFrame(f frame) (err error) {
	switch f := f.(type) {
	case *methodFrame:
		err = w.writeMethodFrame(f)
	case *headerFrame:
		err = w.writeHeaderFrame(f)
	case *bodyFrame:
		err = w.writeBodyFrame(f)
	case *heartbeatFrame:
		err = w.writeHeartbeatFrame(f)
	default:
		return errors.New("unknown frame type")
	}
	return
}

func (w *writer) writeMethodFrame(f *methodFrame) (err error) {
	var payload bytes.Buffer

	if f.Method == nil {
		return errors.New("malformed frame: missing method")
	}

	classId, methodId := f.Method.id()

	if err = binary.Write(&payload, binary.BigEndian, classId); err != nil {
		return
	}
	if err = binary.Write(&payload, binary.BigEndian, methodId); err != nil {
		return
	}
	if err = f.Method.write(&payload); err != nil {
		return
	}

	return writeFrame(w.w, frameMethod, f.ChannelId, payload.Bytes())
}

// writeHeartbeatFrame writes an empty-payload heartbeat frame.
func (w *writer) writeHeartbeatFrame(f *heartbeatFrame) (err error) {
	return writeFrame(w.w, frameHeartbeat, f.ChannelId, []byte{})
}

// CONTENT HEADER
// 0          2        4           12               14
// +----------+--------+-----------+----------------+------------- - -
// | class-id | weight | body size | property flags | property list...
// +----------+--------+-----------+----------------+------------- - -
//    short     short    long long       short        remainder...
func (w *writer) writeHeaderFrame(f *headerFrame) (err error) {
	var payload bytes.Buffer

	if err = binary.Write(&payload, binary.BigEndian, f.ClassId); err != nil {
		return
	}
	if err = binary.Write(&payload, binary.BigEndian, f.weight); err != nil {
		return
	}
	if err = binary.Write(&payload, binary.BigEndian, f.Size); err != nil {
		return
	}

	var mask uint16

	if len(f.Properties.ContentType) > 0 {
		mask |= flagContentType
	}
	if len(f.Properties.ContentEncoding) > 0 {
		mask |= flagContentEncoding
	}
	if len(f.Properties.Headers) > 0 {
		mask |= flagHeaders
	}
	if f.Properties.DeliveryMode > 0 {
		mask |= flagDeliveryMode
	}
	if f.Properties.Priority > 0 {
		mask |= flagPriority
	}
	if len(f.Properties.CorrelationId) > 0 {
		mask |= flagCorrelationId
	}
	if len(f.Properties.ReplyTo) > 0 {
		mask |= flagReplyTo
	}
	if len(f.Properties.Expiration) > 0 {
		mask |= flagExpiration
	}
	if len(f.Properties.MessageId) > 0 {
		mask |= flagMessageId
	}
	if !f.Properties.Timestamp.IsZero() {
		mask |= flagTimestamp
	}
	if len(f.Properties.Type) > 0 {
		mask |= flagType
	}
	if len(f.Properties.UserId) > 0 {
		mask |= flagUserId
	}
	if len(f.Properties.AppId) > 0 {
		mask |= flagAppId
	}

	if err = binary.Write(&payload, binary.BigEndian, mask); err != nil {
		return
	}

	if hasProperty(mask, flagContentType) {
		if err = writeShortstr(&payload, f.Properties.ContentType); err != nil {
			return
		}
	}
	if hasProperty(mask, flagContentEncoding) {
		if err = writeShortstr(&payload, f.Properties.ContentEncoding); err != nil {
			return
		}
	}
	if hasProperty(mask, flagHeaders) {
		if err = writeTable(&payload, f.Properties.Headers); err != nil {
			return
		}
	}
	if hasProperty(mask, flagDeliveryMode) {
		if err = binary.Write(&payload, binary.BigEndian, f.Properties.DeliveryMode); err != nil {
			return
		}
	}
	if hasProperty(mask, flagPriority) {
		if err = binary.Write(&payload, binary.BigEndian, f.Properties.Priority); err != nil {
			return
		}
	}
	if hasProperty(mask, flagCorrelationId) {
		if err = writeShortstr(&payload, f.Properties.CorrelationId); err != nil {
			return
		}
	}
	if hasProperty(mask, flagReplyTo) {
		if err = writeShortstr(&payload, f.Properties.ReplyTo); err != nil {
			return
		}
	}
	if hasProperty(mask, flagExpiration) {
		if err = writeShortstr(&payload, f.Properties.Expiration); err != nil {
			return
		}
	}
	if hasProperty(mask, flagMessageId) {
		if err = writeShortstr(&payload, f.Properties.MessageId); err != nil {
			return
		}
	}
	if hasProperty(mask, flagTimestamp) {
		if err = writeTimestamp(&payload, f.Properties.Timestamp); err != nil {
			return
		}
	}
	if hasProperty(mask, flagType) {
		if err = writeShortstr(&payload, f.Properties.Type); err != nil {
			return
		}
	}
	if hasProperty(mask, flagUserId) {
		if err = writeShortstr(&payload, f.Properties.UserId); err != nil {
			return
		}
	}
	if hasProperty(mask, flagAppId) {
		if err = writeShortstr(&payload, f.Properties.AppId); err != nil {
			return
		}
	}

	return writeFrame(w.w, frameHeader, f.ChannelId, payload.Bytes())
}

// writeBodyFrame writes one body-frame chunk; chunking to MaxFrameSize
// is the caller's responsibility (see Channel.sendOpen).
func (w *writer) writeBodyFrame(f *bodyFrame) (err error) {
	return writeFrame(w.w, frameBody, f.ChannelId, f.Body)
}

func writeFrame(w io.Writer, typ uint8, channel uint16, payload []byte) (err error) {
	size := uint32(len(payload))

	header := [7]byte{
		byte(typ),
		byte(channel >> 8),
		byte(channel),
		byte(size >> 24),
		byte(size >> 16),
		byte(size >> 8),
		byte(size),
	}

	if _, err = w.Write(header[:]); err != nil {
		return
	}
	if _, err = w.Write(payload); err != nil {
		return
	}
	_, err = w.Write([]byte{frameEnd})
	return
}

func writeShortstr(w io.Writer, s string) (err error) {
	b := []byte(s)
	if len(b) > 255 {
		return errors.New("short string exceeds 255 bytes")
	}
	if err = binary.Write(w, binary.BigEndian, uint8(len(b))); err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

func writeLongstr(w io.Writer, s string) (err error) {
	b := []byte(s)
	if err = binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

func writeDecimal(w io.Writer, d Decimal) (err error) {
	if err = binary.Write(w, binary.BigEndian, d.Scale); err != nil {
		return
	}
	return binary.Write(w, binary.BigEndian, d.Value)
}

func writeTimestamp(w io.Writer, t interface{ Unix() int64 }) (err error) {
	return binary.Write(w, binary.BigEndian, t.Unix())
}

// writeField encodes one AMQP field-table value, tag octet followed by
// its type-specific payload, mirroring readField's switch exactly.
func writeField(w io.Writer, value interface{}) (err error) {
	switch v := value.(type) {
	case bool:
		if err = binary.Write(w, binary.BigEndian, byte('t')); err != nil {
			return
		}
		var b uint8
		if v {
			b = 1
		}
		return binary.Write(w, binary.BigEndian, b)

	case int8:
		if err = binary.Write(w, binary.BigEndian, byte('b')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case uint8:
		if err = binary.Write(w, binary.BigEndian, byte('B')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case int16:
		if err = binary.Write(w, binary.BigEndian, byte('U')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case uint16:
		if err = binary.Write(w, binary.BigEndian, byte('u')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case int32:
		if err = binary.Write(w, binary.BigEndian, byte('I')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case uint32:
		if err = binary.Write(w, binary.BigEndian, byte('i')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case int64:
		if err = binary.Write(w, binary.BigEndian, byte('L')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case uint64:
		if err = binary.Write(w, binary.BigEndian, byte('l')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case float32:
		if err = binary.Write(w, binary.BigEndian, byte('f')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case float64:
		if err = binary.Write(w, binary.BigEndian, byte('d')); err != nil {
			return
		}
		return binary.Write(w, binary.BigEndian, v)

	case Decimal:
		if err = binary.Write(w, binary.BigEndian, byte('D')); err != nil {
			return
		}
		return writeDecimal(w, v)

	case string:
		if len(v) < 256 {
			if err = binary.Write(w, binary.BigEndian, byte('s')); err != nil {
				return
			}
			return writeShortstr(w, v)
		}
		if err = binary.Write(w, binary.BigEndian, byte('S')); err != nil {
			return
		}
		return writeLongstr(w, v)

	case []interface{}:
		if err = binary.Write(w, binary.BigEndian, byte('A')); err != nil {
			return
		}
		var arr bytes.Buffer
		for _, val := range v {
			if err = writeField(&arr, val); err != nil {
				return
			}
		}
		return writeLongstr(w, string(arr.Bytes()))

	case interface{ Unix() int64 }:
		if err = binary.Write(w, binary.BigEndian, byte('T')); err != nil {
			return
		}
		return writeTimestamp(w, v)

	case Table:
		if err = binary.Write(w, binary.BigEndian, byte('F')); err != nil {
			return
		}
		return writeTable(w, v)

	case nil:
		return binary.Write(w, binary.BigEndian, byte('V'))

	default:
		return ErrFieldType
	}
}

func writeTable(w io.Writer, table Table) (err error) {
	var buf bytes.Buffer

	for key, val := range table {
		if err = writeShortstr(&buf, key); err != nil {
			return
		}
		if err = writeField(&buf, val); err != nil {
			return
		}
	}

	return writeLongstr(w, buf.String())
}
