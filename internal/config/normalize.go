// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for pi := range cfg.Ports {
		p := &cfg.Ports[pi]

		if p.Probe == nil {
			continue
		}

		if p.Probe.BaudRate == 0 {
			p.Probe.BaudRate = 9600
		}
		if p.Probe.TimeoutMs == 0 {
			p.Probe.TimeoutMs = 1000
		}
		if p.Probe.Modbus != nil && p.Probe.Modbus.Quantity == 0 {
			p.Probe.Modbus.Quantity = 1
		}
	}
}
