package api

import (
	"log"
	"net"
	"strconv"
)

// dialAddr turns a bound address into one a client on this machine can dial.
// Wildcard binds are reached through loopback.
func dialAddr(a net.Addr) string {
	tcp, ok := a.(*net.TCPAddr)
	if !ok || !tcp.IP.IsUnspecified() {
		return a.String()
	}
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(tcp.Port))
}

// shareAddr is the address other machines on the LAN should use. Only
// wildcard binds are reachable from outside, anything else is returned as is.
func shareAddr(a net.Addr) string {
	tcp, ok := a.(*net.TCPAddr)
	if !ok || !tcp.IP.IsUnspecified() {
		return a.String()
	}
	return net.JoinHostPort(outgoingIP(), strconv.Itoa(tcp.Port))
}

// outgoingIP finds the preferred local IP. No packets are sent; dialing UDP
// only selects a route.
func outgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return interfaceIP()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// interfaceIP is used on networks without a default route.
func interfaceIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("[API] cannot list interfaces: %v", err)
		return "127.0.0.1"
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	log.Println("[API] no LAN address found, sharing loopback")
	return "127.0.0.1"
}
