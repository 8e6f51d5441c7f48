package graph

import (
	"sort"
	"strings"
)

// Control is a machine's role-tag.  Its String() is the symbol an
// acceptor reads.
type Control interface {
	String() string
}

// PosControl carries a part-of-speech code, possibly annotated with
// case markers: "NOUN<CAS<ACC>>".
type PosControl struct {
	Pos string `json:"pos"`
}

func (c *PosControl) String() string {
	return c.Pos
}

// KRPosControl is a part-of-speech code plus a feature mapping (the
// "KR code").
type KRPosControl struct {
	Pos string            `json:"pos"`
	KR  map[string]string `json:"kr,omitempty"`
}

// NewKRPosControl makes a KRPosControl with an empty feature map.
func NewKRPosControl(pos string) *KRPosControl {
	return &KRPosControl{
		Pos: pos,
		KR:  make(map[string]string),
	}
}

// String renders the code followed by features in key order:
// "NOUN[CAS=ACC,NUM=PL]".
func (c *KRPosControl) String() string {
	if len(c.KR) == 0 {
		return c.Pos
	}
	keys := make([]string, 0, len(c.KR))
	for k := range c.KR {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + c.KR[k]
	}
	return c.Pos + "[" + strings.Join(pairs, ",") + "]"
}

// ConceptControl marks a machine as a concept.
type ConceptControl struct{}

func (c *ConceptControl) String() string {
	return "CONCEPT"
}

// Satisfier is implemented by controls that can report whether they
// are complete.
type Satisfier interface {
	Satisfied() bool
}

// AVM is an attribute-value matrix control.  It's satisfied when every
// Required feature has a non-empty value.
type AVM struct {
	Features map[string]string `json:"features,omitempty"`
	Required []string          `json:"required,omitempty"`
}

func (a *AVM) String() string {
	return "AVM"
}

func (a *AVM) Satisfied() bool {
	for _, k := range a.Required {
		if a.Features[k] == "" {
			return false
		}
	}
	return true
}

// CopyControl copies the controls defined in this package.  Other
// controls are returned as is.
func CopyControl(c Control) Control {
	switch vv := c.(type) {
	case *PosControl:
		return &PosControl{Pos: vv.Pos}
	case *KRPosControl:
		kr := make(map[string]string, len(vv.KR))
		for k, v := range vv.KR {
			kr[k] = v
		}
		return &KRPosControl{Pos: vv.Pos, KR: kr}
	case *ConceptControl:
		return &ConceptControl{}
	case *AVM:
		fs := make(map[string]string, len(vv.Features))
		for k, v := range vv.Features {
			fs[k] = v
		}
		return &AVM{Features: fs, Required: append([]string(nil), vv.Required...)}
	default:
		return c
	}
}
