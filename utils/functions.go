package utils

import (
	"fmt"
	"net"
	"strconv"
)

// IsPortAvailable - checks whether host:port can be bound right now
func IsPortAvailable(host string, port int) bool {

	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))

	if err != nil {
		return false
	}

	ln.Close()

	return true
}

// FindAvailablePort - first bindable port in [start, start+count)
func FindAvailablePort(host string, start, count int) (int, error) {

	for port := start; port < start+count && port <= 65535; port++ {
		if IsPortAvailable(host, port) {
			return port, nil
		}
	}

	return 0, fmt.Errorf("no available ports found in range %d-%d", start, start+count-1)
}
