// Copyright 2026 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err  error
	msg  string
	next *link
}

func (l *link) String() string {
	if len(l.msg) == 0 {
		return l.err.Error()
	}

	return l.err.Error() + ": " + l.msg
}

// ErrorChain links a sentinel error and its message to the errors causing
// it. errors.Is and errors.As walk the chain from its head.
type ErrorChain struct { // nolint: errname
	head *link
	tail *link
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).append(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).append(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).append(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err == nil {
		return ec
	}

	return ec.append(err, "")
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, 2) // nolint: mnd

	for l := ec.head; l != nil; l = l.next {
		parts = append(parts, l.String())
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) Unwrap() error {
	if ec.head == nil || ec.head.next == nil {
		return nil
	}

	return &ErrorChain{head: ec.head.next, tail: ec.tail}
}

func (ec *ErrorChain) Is(target error) bool {
	return ec.head != nil && errors.Is(ec.head.err, target)
}

func (ec *ErrorChain) As(target any) bool {
	return ec.head != nil && errors.As(ec.head.err, target)
}

func (ec *ErrorChain) Errors() []error {
	var errs []error

	for l := ec.head; l != nil; l = l.next {
		errs = append(errs, l.err)
	}

	return errs
}

// Code renders the head error as a snake case identifier, e.g.
// "key already exists" becomes "key_already_exists".
func (ec *ErrorChain) Code() string {
	if ec.head == nil {
		return ""
	}

	return strcase.ToSnake(ec.head.err.Error())
}

// Message returns the message attached to the head error.
func (ec *ErrorChain) Message() string {
	if ec.head == nil {
		return ""
	}

	return ec.head.msg
}

type message struct {
	Code    string `json:"code"              yaml:"code"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(message{Code: ec.Code(), Message: ec.Message()})
}

func (ec *ErrorChain) MarshalYAML() (any, error) {
	return message{Code: ec.Code(), Message: ec.Message()}, nil
}

func (ec *ErrorChain) append(err error, msg string) *ErrorChain {
	elem := &link{err: err, msg: msg}

	if ec.head == nil {
		ec.head = elem
		ec.tail = elem

		return ec
	}

	ec.tail.next = elem
	ec.tail = elem

	return ec
}
