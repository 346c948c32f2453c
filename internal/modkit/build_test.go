package modkit

import "testing"

type namedPort struct{ id string }

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Ports != nil {
		t.Fatalf("zero Build = %+v", b)
	}
}

func TestBuildOptions(t *testing.T) {
	b := Build(
		WithName("gathering"),
		WithPorts(namedPort{id: "p"}),
	)
	if b.Name != "gathering" {
		t.Fatalf("Name = %q", b.Name)
	}
	p, ok := b.Ports.(namedPort)
	if !ok || p.id != "p" {
		t.Fatalf("Ports = %+v", b.Ports)
	}
}

func TestLastNameWins(t *testing.T) {
	b := Build(WithName("a"), WithName("b"))
	if b.Name != "b" {
		t.Fatalf("Name = %q", b.Name)
	}
}
