// internal/config/validate.go
package config

import "fmt"

// Validate checks profile correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if len(cfg.Ports) == 0 {
		return fmt.Errorf("config: no ports defined")
	}

	names := make(map[string]struct{})
	bases := make(map[uint16]string)

	for _, p := range cfg.Ports {
		if p.Name == "" {
			return fmt.Errorf("config: port with empty name")
		}
		if _, dup := names[p.Name]; dup {
			return fmt.Errorf("config: duplicate port name %q", p.Name)
		}
		names[p.Name] = struct{}{}

		// One register block belongs to one port.
		if p.IOBase != 0 {
			if prev, dup := bases[p.IOBase]; dup {
				return fmt.Errorf(
					"config: io_base %#x claimed by ports %q and %q",
					p.IOBase, prev, p.Name,
				)
			}
			bases[p.IOBase] = p.Name
		}

		switch p.Mode {
		case ModeRS422, ModeRS485DTR, ModeRS485Auto, ModeRS485Echo:
		case "":
			return fmt.Errorf("config: port %q: mode required", p.Name)
		default:
			return fmt.Errorf("config: port %q: unknown mode %q", p.Name, p.Mode)
		}

		if p.DelayRTSBeforeSendMs < 0 || p.DelayRTSAfterSendMs < 0 {
			return fmt.Errorf("config: port %q: negative RTS delay", p.Name)
		}

		if p.Probe == nil {
			continue
		}

		if p.Device == "" {
			return fmt.Errorf("config: port %q: probe requires a device", p.Name)
		}
		if p.Probe.BaudRate < 0 || p.Probe.TimeoutMs < 0 {
			return fmt.Errorf("config: port %q: negative probe settings", p.Name)
		}
		if !p.Probe.Loopback && p.Probe.Modbus == nil {
			return fmt.Errorf("config: port %q: probe enables nothing", p.Name)
		}
	}

	return nil
}
