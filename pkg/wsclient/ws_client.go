package wsclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type MessageType string

const (
	MTUndefined MessageType = ""
	MTCmd       MessageType = "cmd"
	MTResult    MessageType = "result"
	MTLog       MessageType = "log"
)

// Message is the JSON frame exchanged with the handler host.
type Message struct {
	Type    MessageType
	Content []byte
}

type Client struct {
	serverURL   string
	sendChan    chan Message
	receiveChan chan Message
}

func New(serverURL string) *Client {
	return &Client{
		serverURL:   serverURL,
		sendChan:    make(chan Message, 1),
		receiveChan: make(chan Message, 1),
	}
}

func (c *Client) SendMessage(message Message) {
	c.sendChan <- message
}

// ReceiveMessage blocks until a message arrives; it returns a zero Message
// once ctx is done.
func (c *Client) ReceiveMessage(ctx context.Context) Message {
	select {
	case <-ctx.Done():
		return Message{}
	case msg := <-c.receiveChan:
		return msg
	}
}

func (c *Client) Run(ctx context.Context) {
	logrus.Warnf("started websocket client")
	const reconnectInterval = 5 * time.Second
	wsURL := "ws" + strings.TrimPrefix(strings.TrimSuffix(c.serverURL, "/"), "http") + "/calc/ws/"
	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
		if err != nil {
			logrus.Error(fmt.Errorf("error connecting to server's web socket: %w", err))
		} else {
			c.serveConn(ctx, conn)
		}
		select {
		case <-ctx.Done():
			logrus.Warnf("stopped websocket client")
			return
		case <-time.After(reconnectInterval):
		}
	}
}

// serveConn pumps a single connection and returns once it is dead, so the
// caller never holds more than one connection at a time. The connection is
// closed when either pump exits or ctx is done.
func (c *Client) serveConn(ctx context.Context, conn *websocket.Conn) {
	connCtx, closeConn := context.WithCancel(ctx)
	defer closeConn()
	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer closeConn()
		c.sendMessages(connCtx, conn)
	}()
	c.receiveMessages(connCtx, conn)
}

func (c *Client) receiveMessages(ctx context.Context, conn *websocket.Conn) {
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil {
				logrus.Error(fmt.Errorf("error reading message from web socket: %w", err))
			}
			return
		}
		select {
		case c.receiveChan <- msg:
		case <-time.After(200 * time.Millisecond):
			continue
		}
	}
}

func (c *Client) sendMessages(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.sendChan:
			if err := conn.WriteJSON(msg); err != nil {
				logrus.Error(fmt.Errorf("error writing message to web socket: %w", err))
				return
			}
		}
	}
}
