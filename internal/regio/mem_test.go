// internal/regio/mem_test.go
package regio

import "testing"

func TestMem_ReadsBackWrites(t *testing.T) {
	m := NewMem()

	if v := m.ReadRegister(0x0F); v != 0 {
		t.Fatalf("fresh register = %#02x, want 0", v)
	}

	m.WriteRegister(0x0F, 0x4B)
	if v := m.ReadRegister(0x0F); v != 0x4B {
		t.Fatalf("read back %#02x, want %#02x", v, 0x4B)
	}

	m.Seed(0x0E, 0x13)
	if v := m.ReadRegister(0x0E); v != 0x13 {
		t.Fatalf("seeded register = %#02x, want %#02x", v, 0x13)
	}
}
