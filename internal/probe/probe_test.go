// internal/probe/probe_test.go
package probe

import (
	"bytes"
	"strings"
	"testing"
)

// ---- fakes ----

// echoPort behaves like a 2-wire port in echo mode: everything written
// is readable back.
type echoPort struct {
	bytes.Buffer
}

// corruptPort flips the first byte it echoes.
type corruptPort struct {
	bytes.Buffer
	corrupted bool
}

func (c *corruptPort) Write(p []byte) (int, error) {
	q := append([]byte(nil), p...)
	if !c.corrupted && len(q) > 0 {
		q[0] ^= 0xFF
		c.corrupted = true
	}
	return c.Buffer.Write(q)
}

type fakeModbus struct {
	calls [][2]uint16
	resp  []byte
	err   error
}

func (f *fakeModbus) ReadHoldingRegisters(address, quantity uint16) ([]byte, error) {
	f.calls = append(f.calls, [2]uint16{address, quantity})
	return f.resp, f.err
}

// ---- tests ----

func TestLoopback_EchoPort(t *testing.T) {
	if err := Loopback(&echoPort{}, []byte("ping")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoopback_DefaultPayload(t *testing.T) {
	if err := Loopback(&echoPort{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoopback_Mismatch(t *testing.T) {
	err := Loopback(&corruptPort{}, []byte("ping"))
	if err == nil {
		t.Fatalf("expected mismatch error, got nil")
	}
	if !strings.Contains(err.Error(), "mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestModbusSmoke_GeometryChecked(t *testing.T) {
	f := &fakeModbus{resp: []byte{0x00, 0x01, 0x00, 0x02}}

	if err := ModbusSmoke(f, 100, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.calls) != 1 || f.calls[0] != [2]uint16{100, 2} {
		t.Fatalf("unexpected calls: %v", f.calls)
	}
}

func TestModbusSmoke_ShortResponse(t *testing.T) {
	f := &fakeModbus{resp: []byte{0x00}}

	if err := ModbusSmoke(f, 0, 2); err == nil {
		t.Fatalf("expected short-response error, got nil")
	}
}
