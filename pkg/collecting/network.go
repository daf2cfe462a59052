package collecting

import (
	"fmt"
	"net"

	"sysinfo/pkg/metrics"
)

// DefaultProbeAddr is the outbound address used to resolve the local IP.
// No packet is sent; a UDP dial only selects the route and source address.
const DefaultProbeAddr = "8.8.8.8:80"

// Network resolves the host's primary local IP address.
type Network struct {
	probeAddr string
}

func NewNetwork() *Network { return &Network{probeAddr: DefaultProbeAddr} }

// NewNetworkWithProbe overrides the probe address, mainly for tests.
func NewNetworkWithProbe(addr string) *Network { return &Network{probeAddr: addr} }

func (c *Network) Name() string { return "network" }
func (c *Network) Close() error { return nil }

func (c *Network) StaticKeys() []string {
	return []string{metrics.KeyLocalIP}
}

func (c *Network) DynamicKeys() []string { return nil }

func (c *Network) CollectStatic(r Setter) error {
	conn, err := net.Dial("udp", c.probeAddr)
	if err != nil {
		return fmt.Errorf("resolve local ip: %w", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return fmt.Errorf("resolve local ip: unexpected address type %T", conn.LocalAddr())
	}
	r.Set(metrics.KeyLocalIP, addr.IP.String())
	return nil
}

func (c *Network) CollectDynamic(r Setter) error { return nil }
