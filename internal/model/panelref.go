package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PanelKind is the variant of a PanelRef.
type PanelKind string

const (
	PanelKindShutter   PanelKind = "shutter"
	PanelKindCell      PanelKind = "cell"
	PanelKindPartition PanelKind = "partition"
	PanelKindFixed     PanelKind = "fixed"
	PanelKindMirror    PanelKind = "mirror"
)

// PanelRef identifies a glazed panel within a structure. Only the fields of
// the active Kind are meaningful. Side is set for panels of a corner window.
type PanelRef struct {
	Kind  PanelKind `json:"kind"`
	Index int       `json:"index,omitempty"`
	Row   int       `json:"row,omitempty"`
	Col   int       `json:"col,omitempty"`
	Edge  Position  `json:"edge,omitempty"`
	Side  Position  `json:"side,omitempty"`
}

// ShutterRef refers to sliding shutter i.
func ShutterRef(i int) PanelRef { return PanelRef{Kind: PanelKindShutter, Index: i} }

// CellRef refers to a casement or ventilator grid cell.
func CellRef(row, col int) PanelRef { return PanelRef{Kind: PanelKindCell, Row: row, Col: col} }

// PartitionRef refers to glass partition panel i.
func PartitionRef(i int) PanelRef { return PanelRef{Kind: PanelKindPartition, Index: i} }

// FixedEdgeRef refers to the fixed panel on one edge.
func FixedEdgeRef(pos Position) PanelRef { return PanelRef{Kind: PanelKindFixed, Edge: pos} }

// MirrorRef refers to the single pane of a mirror.
func MirrorRef() PanelRef { return PanelRef{Kind: PanelKindMirror} }

// WithSide returns a copy of r scoped to one side of a corner window.
func (r PanelRef) WithSide(side Position) PanelRef {
	r.Side = side
	return r
}

// Local returns r without its corner side.
func (r PanelRef) Local() PanelRef {
	r.Side = ""
	return r
}

// Key is the canonical string form of the reference.
func (r PanelRef) Key() string {
	var local string
	switch r.Kind {
	case PanelKindShutter, PanelKindPartition:
		local = fmt.Sprintf("%s:%d", r.Kind, r.Index)
	case PanelKindCell:
		local = fmt.Sprintf("%s:%d:%d", r.Kind, r.Row, r.Col)
	case PanelKindFixed:
		local = fmt.Sprintf("%s:%s", r.Kind, r.Edge)
	default:
		local = string(r.Kind)
	}
	if r.Side != "" {
		return string(r.Side) + "/" + local
	}
	return local
}

func (r PanelRef) String() string { return r.Key() }

// ParsePanelRef is the inverse of Key.
func ParsePanelRef(key string) (PanelRef, error) {
	var ref PanelRef
	if side, rest, ok := strings.Cut(key, "/"); ok {
		ref.Side = Position(side)
		if ref.Side != PositionLeft && ref.Side != PositionRight {
			return PanelRef{}, fmt.Errorf("invalid corner side %q", side)
		}
		key = rest
	}
	parts := strings.Split(key, ":")
	ref.Kind = PanelKind(parts[0])

	atoi := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid panel index %q: %w", s, err)
		}
		return n, nil
	}

	var err error
	switch ref.Kind {
	case PanelKindShutter, PanelKindPartition:
		if len(parts) != 2 {
			return PanelRef{}, fmt.Errorf("invalid panel key %q", key)
		}
		ref.Index, err = atoi(parts[1])
	case PanelKindCell:
		if len(parts) != 3 {
			return PanelRef{}, fmt.Errorf("invalid panel key %q", key)
		}
		if ref.Row, err = atoi(parts[1]); err == nil {
			ref.Col, err = atoi(parts[2])
		}
	case PanelKindFixed:
		if len(parts) != 2 {
			return PanelRef{}, fmt.Errorf("invalid panel key %q", key)
		}
		ref.Edge = Position(parts[1])
		switch ref.Edge {
		case PositionTop, PositionBottom, PositionLeft, PositionRight:
		default:
			return PanelRef{}, fmt.Errorf("invalid fixed panel edge %q", parts[1])
		}
	case PanelKindMirror:
		if len(parts) != 1 {
			return PanelRef{}, fmt.Errorf("invalid panel key %q", key)
		}
	default:
		return PanelRef{}, fmt.Errorf("unknown panel kind %q", parts[0])
	}
	if err != nil {
		return PanelRef{}, err
	}
	return ref, nil
}
