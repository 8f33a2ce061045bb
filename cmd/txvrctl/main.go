// cmd/txvrctl/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tamzrod/txvr16550/internal/config"
	"github.com/tamzrod/txvr16550/internal/probe"
	"github.com/tamzrod/txvr16550/internal/regio"
	"github.com/tamzrod/txvr16550/internal/txvr"
	"github.com/tamzrod/txvr16550/internal/uart"
)

func main() {
	dryRun := flag.Bool("n", false, "dry run: program an in-memory register file instead of hardware")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: txvrctl [-n] <ports.yaml>")
	}

	// --------------------
	// Load + validate profile
	// --------------------

	cfg, err := config.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// --------------------
	// Bring up each port
	// --------------------

	failed := 0
	for _, pc := range cfg.Ports {
		if err := bringUp(pc, *dryRun); err != nil {
			log.Printf("port %s: %v", pc.Name, err)
			failed++
			continue
		}
		log.Printf("port %s: %s configured", pc.Name, pc.Mode)
	}

	if failed > 0 {
		log.Fatalf("%d of %d ports failed", failed, len(cfg.Ports))
	}
}

// bringUp programs one port's transceiver mode, termination and
// prescaler, then runs the configured probes.
func bringUp(pc config.PortConfig, dryRun bool) error {
	bus, done, err := openBus(pc, dryRun)
	if err != nil {
		return err
	}
	defer done()

	port := uart.New(bus)
	txvr.PortSetup(port)

	// A dual-mode port switched to RS-232 has nothing for us to drive.
	if txvr.IsRS232Mode(bus) {
		return fmt.Errorf("hardware reports RS-232 mode, refusing transceiver setup")
	}

	if err := port.SetRS485(pc.RS485()); err != nil {
		return err
	}
	txvr.SetTermination(bus, pc.Termination)
	if pc.Prescaler != nil {
		txvr.SetPrescaler(bus, *pc.Prescaler)
	}
	if err := port.EnableTransceivers(); err != nil {
		return err
	}

	if err := busErr(bus); err != nil {
		return err
	}

	log.Printf("port %s: pcr=%#02x", pc.Name, bus.ReadRegister(txvr.PCROffset))

	if dryRun || pc.Probe == nil {
		return nil
	}
	return runProbes(pc, port.RS485())
}

func openBus(pc config.PortConfig, dryRun bool) (uart.Bus, func(), error) {
	if dryRun {
		return regio.NewMem(), func() {}, nil
	}
	if pc.IOBase == 0 {
		return nil, nil, fmt.Errorf("io_base required outside dry-run")
	}
	pio, err := regio.OpenPortIO(pc.IOBase)
	if err != nil {
		return nil, nil, err
	}
	return pio, func() { _ = pio.Close() }, nil
}

// busErr surfaces the sticky access error of backends that carry one.
func busErr(bus uart.Bus) error {
	if c, ok := bus.(interface{ Err() error }); ok {
		return c.Err()
	}
	return nil
}

func runProbes(pc config.PortConfig, applied uart.RS485Config) error {
	timeout := time.Duration(pc.Probe.TimeoutMs) * time.Millisecond

	if pc.Probe.Loopback {
		sp, err := probe.OpenSerial(pc.Device, pc.Probe.BaudRate, timeout, applied)
		if err != nil {
			return err
		}
		err = probe.Loopback(sp, nil)
		_ = sp.Close()
		if err != nil {
			return err
		}
		log.Printf("port %s: loopback ok", pc.Name)
	}

	if mb := pc.Probe.Modbus; mb != nil {
		cli, closeCli, err := probe.NewRTUClient(pc.Device, pc.Probe.BaudRate, mb.SlaveID, timeout)
		if err != nil {
			return err
		}
		err = probe.ModbusSmoke(cli, mb.Address, mb.Quantity)
		_ = closeCli()
		if err != nil {
			return err
		}
		log.Printf("port %s: modbus smoke ok (station %d)", pc.Name, mb.SlaveID)
	}

	return nil
}
