// SPDX-License-Identifier: MIT
// Package: contactnet/codec
//
// codec.go - Snapshot, Capture/Restore and YAML Encode/Decode.

// Package codec imports and exports network snapshots as YAML.
//
// A snapshot holds the node values in ID order and each undirected link
// once, as a [a, b] pair with a < b:
//
//	values: [0.12, -1.3, 0.8]
//	links: [[0, 1], [1, 2]]
package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/contactnet/network"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be rebuilt into a
// network, e.g. a link referencing a missing node or a repeated link.
var ErrInvalidSnapshot = errors.New("codec: invalid snapshot")

// Snapshot is the serialized form of a network.
type Snapshot struct {
	Values []float64 `yaml:"values,flow"`
	Links  [][2]int  `yaml:"links,omitempty,flow"`
}

// Capture returns the Snapshot of net.
func Capture(net *network.Network) Snapshot {
	return Snapshot{Values: net.Values(), Links: net.Links()}
}

// Restore replaces the values and links of net with those of s.
// On error net holds the values and the links accepted before the failure.
func (s Snapshot) Restore(net *network.Network) error {
	net.ClearLinks()
	net.SetValues(s.Values)
	for i, l := range s.Links {
		if err := net.Link(l[0], l[1]); err != nil {
			return fmt.Errorf("%w: links[%d]: %w", ErrInvalidSnapshot, i, err)
		}
	}
	return nil
}

// Encode writes the snapshot of net to w as YAML.
func Encode(w io.Writer, net *network.Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Capture(net)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML snapshot from r into a new network built with opts.
func Decode(r io.Reader, opts ...network.Option) (*network.Network, error) {
	net := network.New(opts...)
	if err := DecodeInto(r, net); err != nil {
		return nil, err
	}
	return net, nil
}

// DecodeInto reads a YAML snapshot from r and restores it into net.
func DecodeInto(r io.Reader, net *network.Network) error {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return s.Restore(net)
}
