// Package websocket implements transport.Transport over a websocket
// connection, for devices bridged by a network gateway.
package websocket

import (
	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/adio.go/pkg/transport"
)

// Dial connects to a websocket endpoint and wraps the connection as a
// transport. The gateway is expected to relay raw device bytes in
// binary frames.
func Dial(url, origin string) (*transport.Stream, error) {
	conn, err := websocket.Dial(url, "", origin)
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	glog.Infof("connected %s", url)
	return transport.NewStream(conn), nil
}

// New wraps an established websocket connection, e.g. one accepted by
// a websocket.Server.
func New(conn *websocket.Conn) *transport.Stream {
	conn.PayloadType = websocket.BinaryFrame
	return transport.NewStream(conn)
}
