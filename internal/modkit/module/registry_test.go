package module

import "testing"

type pingPort interface{ Ping() string }

type pinger struct{ id string }

func (p pinger) Ping() string { return p.id }

func TestRegisterAndPortsAs(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("gatherers", pinger{id: "a"})

	got, ok := PortsAs[pingPort]("gatherers")
	if !ok || got.Ping() != "a" {
		t.Fatalf("PortsAs = (%v, %v)", got, ok)
	}

	if _, ok := PortsAs[pingPort]("absent"); ok {
		t.Fatalf("PortsAs should miss for unknown name")
	}

	// wrong type assertion misses without panicking
	if _, ok := PortsAs[interface{ Pong() }]("gatherers"); ok {
		t.Fatalf("PortsAs should miss on type mismatch")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("gatherers", pinger{id: "a"})
	Register("gatherers", pinger{id: "b"})

	got, _ := PortsAs[pingPort]("gatherers")
	if got.Ping() != "b" {
		t.Fatalf("Register should overwrite, got %q", got.Ping())
	}
}
