package threadx

import "github.com/comalice/threadx/internal/registry"

// Stats is a point-in-time snapshot of thread lifecycle counters,
// covering only threads started by Create.
type Stats struct {
	Created  uint64 `json:"created" yaml:"created"`
	Active   uint64 `json:"active" yaml:"active"`
	Joined   uint64 `json:"joined" yaml:"joined"`
	Detached uint64 `json:"detached" yaml:"detached"`
}

// Snapshot returns the current lifecycle counters.
func Snapshot() Stats {
	c := registry.Snapshot()
	return Stats{
		Created:  c.Created,
		Active:   c.Active,
		Joined:   c.Joined,
		Detached: c.Detached,
	}
}
