package testutils

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"testing"
)

// StartRawTCPServer accepts connections on a free local port, reads one
// HTTP request from each and answers it with rawResponse before closing the
// connection. It is used to simulate servers breaking the HTTP protocol.
// Returns the base URL of the server.
func StartRawTCPServer(t *testing.T, rawResponse []byte) string {
	srvAddr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))

	listener, err := net.Listen("tcp", srvAddr)
	if err != nil {
		t.Fatalf("cannot start raw tcp server: %v", err)
	}

	t.Cleanup(func() {
		listener.Close()
	})

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}

			go func(conn net.Conn) {
				defer conn.Close()

				if _, err := http.ReadRequest(bufio.NewReader(conn)); err != nil {
					return
				}

				conn.Write(rawResponse)
			}(conn)
		}
	}()

	return "http://" + srvAddr
}
