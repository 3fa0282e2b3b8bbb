package sequencer

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// assetKey is one curve key in a sequence file. Value is a bool for
// visibility sections and a number for alpha sections.
type assetKey struct {
	Time  float64 `json:"time" yaml:"time"`
	Value any     `json:"value" yaml:"value"`
	Ease  string  `json:"ease,omitempty" yaml:"ease,omitempty"`
}

type assetSection struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string     `json:"type" yaml:"type"`
	Start      *float64   `json:"start,omitempty" yaml:"start,omitempty"`
	End        *float64   `json:"end,omitempty" yaml:"end,omitempty"`
	Completion string     `json:"completion,omitempty" yaml:"completion,omitempty"`
	Keys       []assetKey `json:"keys" yaml:"keys"`
}

type assetTrack struct {
	Name     string         `json:"name" yaml:"name"`
	Binding  string         `json:"binding,omitempty" yaml:"binding,omitempty"`
	Sections []assetSection `json:"sections" yaml:"sections"`
}

// assetSequence is the top-level structure of a sequence file.
type assetSequence struct {
	Name   string       `json:"name" yaml:"name"`
	Length float64      `json:"length,omitempty" yaml:"length,omitempty"`
	Tracks []assetTrack `json:"tracks" yaml:"tracks"`
}

// Section types accepted in sequence files.
const (
	SectionTypeVisibility = "visibility"
	SectionTypeAlpha      = "alpha"
)

// LoadSequence parses a JSON sequence description.
//
//	{"name": "intro", "length": 10, "tracks": [
//	  {"name": "door", "sections": [
//	    {"type": "visibility", "completion": "restore",
//	     "keys": [{"time": 0, "value": false}, {"time": 5, "value": true}]}
//	  ]}
//	]}
func LoadSequence(jsonData []byte) (*Sequence, error) {
	var a assetSequence
	if err := json.Unmarshal(jsonData, &a); err != nil {
		return nil, fmt.Errorf("sequencer: parse sequence JSON: %w", err)
	}
	return buildSequence(a)
}

// LoadSequenceYAML parses a YAML sequence description with the same fields
// as LoadSequence.
func LoadSequenceYAML(yamlData []byte) (*Sequence, error) {
	var a assetSequence
	if err := yaml.Unmarshal(yamlData, &a); err != nil {
		return nil, fmt.Errorf("sequencer: parse sequence YAML: %w", err)
	}
	return buildSequence(a)
}

func buildSequence(a assetSequence) (*Sequence, error) {
	if len(a.Tracks) == 0 {
		return nil, fmt.Errorf("sequencer: sequence %q has no tracks", a.Name)
	}
	if a.Length < 0 {
		return nil, fmt.Errorf("sequencer: sequence %q has negative length %v", a.Name, a.Length)
	}
	seq := NewSequence(a.Name, a.Length)
	for _, at := range a.Tracks {
		if at.Name == "" {
			return nil, fmt.Errorf("sequencer: sequence %q has a track with no name", a.Name)
		}
		binding := uuid.Nil
		if at.Binding != "" {
			b, err := uuid.Parse(at.Binding)
			if err != nil {
				return nil, fmt.Errorf("sequencer: track %q binding: %w", at.Name, err)
			}
			binding = b
		}
		track := seq.AddTrack(at.Name, binding)
		for i, as := range at.Sections {
			if err := addAssetSection(track, i, as); err != nil {
				return nil, fmt.Errorf("sequencer: track %q: %w", at.Name, err)
			}
		}
	}
	return seq, nil
}

func addAssetSection(track *Track, index int, as assetSection) error {
	name := as.Name
	if name == "" {
		name = fmt.Sprintf("%s#%d", as.Type, index)
	}

	r := InfiniteRange
	if as.Start != nil {
		if !isFinite(*as.Start) {
			return fmt.Errorf("section %q: start %v is not finite", name, *as.Start)
		}
		r.Start = *as.Start
	}
	if as.End != nil {
		if !isFinite(*as.End) {
			return fmt.Errorf("section %q: end %v is not finite", name, *as.End)
		}
		r.End = *as.End
	}
	if r.End <= r.Start {
		return fmt.Errorf("section %q: end %v is not after start %v", name, r.End, r.Start)
	}

	var mode CompletionMode
	switch as.Completion {
	case "", "keep":
		mode = CompletionKeepState
	case "restore":
		mode = CompletionRestoreState
	default:
		return fmt.Errorf("section %q: unknown completion mode %q", name, as.Completion)
	}

	for _, k := range as.Keys {
		if !isFinite(k.Time) {
			return fmt.Errorf("section %q: key time %v is not finite", name, k.Time)
		}
	}

	var tmpl SectionTemplate
	switch as.Type {
	case SectionTypeVisibility:
		curve := &BoolCurve{}
		for _, k := range as.Keys {
			v, ok := k.Value.(bool)
			if !ok {
				return fmt.Errorf("section %q: key at %v: want bool value, got %T", name, k.Time, k.Value)
			}
			curve.AddKey(k.Time, v)
		}
		tmpl = &VisibilityTemplate{Curve: curve}
	case SectionTypeAlpha:
		curve := &FloatCurve{}
		for _, k := range as.Keys {
			v, ok := assetNumber(k.Value)
			if !ok {
				return fmt.Errorf("section %q: key at %v: want number value, got %T", name, k.Time, k.Value)
			}
			fn, ok := EaseByName(k.Ease)
			if !ok {
				return fmt.Errorf("section %q: key at %v: unknown ease %q", name, k.Time, k.Ease)
			}
			curve.AddKey(k.Time, v, fn)
		}
		tmpl = &AlphaTemplate{Curve: curve}
	default:
		return fmt.Errorf("section %q: unknown type %q", name, as.Type)
	}

	track.AddSection(name, r, tmpl, mode)
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// assetNumber converts the numeric types produced by encoding/json and
// yaml.v3 to float64.
func assetNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
