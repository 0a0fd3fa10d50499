/*
 * MIT License
 *
 * Copyright (c) 2022-2026 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"bytes"
	"reflect"

	"google.golang.org/protobuf/proto"

	"github.com/tochemey/gonode/internal/xsync"
)

// PayloadKind tells whether a message can cross a scheduler boundary
type PayloadKind int

const (
	// LocalOnly payloads share memory with the sender (closures, channels,
	// pointers, maps, slices...). They can only be sent to processes living
	// on the sender's scheduler.
	LocalOnly PayloadKind = iota
	// Transferable payloads are copied when they cross a scheduler boundary
	Transferable
)

// String returns the kind name
func (k PayloadKind) String() string {
	if k == Transferable {
		return "transferable"
	}
	return "local-only"
}

// Copier is implemented by payloads that know how to deep copy themselves.
// The copy must not share mutable memory with the receiver.
type Copier interface {
	CopyMessage() any
}

// plainTypes caches the classification of non-special payload types
var plainTypes = xsync.NewMap[reflect.Type, bool]()

// Classify returns the PayloadKind of message.
//
// Transferable payloads are nil, protocol buffer messages, Copier
// implementations, byte slices and plain values: booleans, numbers,
// strings, and arrays or structs made only of plain values (Pid included).
// Everything else is LocalOnly.
func Classify(message any) PayloadKind {
	switch message.(type) {
	case nil, proto.Message, Copier, []byte:
		return Transferable
	}
	if isPlain(reflect.TypeOf(message)) {
		return Transferable
	}
	return LocalOnly
}

// transfer returns the copy of message delivered on the other side of a
// scheduler boundary. It returns false for LocalOnly payloads.
func transfer(message any) (any, bool) {
	switch m := message.(type) {
	case nil:
		return nil, true
	case proto.Message:
		return proto.Clone(m), true
	case Copier:
		return m.CopyMessage(), true
	case []byte:
		return bytes.Clone(m), true
	}
	if isPlain(reflect.TypeOf(message)) {
		return message, true
	}
	return nil, false
}

func isPlain(rtype reflect.Type) bool {
	if plain, ok := plainTypes.Get(rtype); ok {
		return plain
	}
	plain := isPlainType(rtype)
	plainTypes.Set(rtype, plain)
	return plain
}

// isPlainType reports whether values of rtype hold no reference to shared memory
func isPlainType(rtype reflect.Type) bool {
	switch rtype.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return isPlainType(rtype.Elem())
	case reflect.Struct:
		for i := range rtype.NumField() {
			if !isPlainType(rtype.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
