// Package msgs defines the typed messages a UWB daemon exchanges with
// remote clients. Each message travels in a Typed envelope carrying its
// type ID, events flow from the daemon and commands to it.
package msgs
