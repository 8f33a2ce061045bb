// internal/txvr/setup.go
package txvr

import "github.com/tamzrod/txvr16550/internal/uart"

// PortSetup binds transceiver control to p. Called once per port.
//
// The hardware comes up in 2-wire auto mode; the seeded configuration
// mirrors that so the cache is truthful before the first SetRS485.
func PortSetup(p *uart.Port) {
	p.Bind(Control{}, ConfigRS485, uart.RS485Config{
		Enabled:   true,
		RTSOnSend: true,
	})
}
