// Package nats provides an interface for the NATS connection for
// mocking.
package nats

import (
	"github.com/nats-io/nats.go"
)

//go:generate moq -rm -out conn_mock.go . Conn

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	Publish(subj string, data []byte) error
	Flush() error
	Drain() error
	Close()
}

var _ Conn = (*nats.Conn)(nil)
