package model

import (
	"context"
	"net"
)

// SecurityLayer opens the network listener a server accepts connections on,
// with or without TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the lifecycle contract the entry point drives.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
