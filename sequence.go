package sequencer

import "github.com/google/uuid"

// Section is a time range on a track that contributes one template's output
// while the playhead is inside it.
type Section struct {
	Name       string
	Range      Range
	Completion CompletionMode
	Template   SectionTemplate

	entity EntityKey
}

// Entity returns the capture scope used by this section when its completion
// mode is CompletionRestoreState.
func (s *Section) Entity() EntityKey {
	return s.entity
}

// Track binds a list of sections to one operand.
type Track struct {
	Name     string
	Operand  Operand
	Sections []*Section
}

// AddSection appends a section covering r and returns it.
func (t *Track) AddSection(name string, r Range, tmpl SectionTemplate, mode CompletionMode) *Section {
	sec := &Section{
		Name:       name,
		Range:      r,
		Completion: mode,
		Template:   tmpl,
		entity:     NewEntityKey(),
	}
	t.Sections = append(t.Sections, sec)
	return sec
}

// Sequence is an ordered list of tracks plus a playback length in seconds.
// A Length of zero means playback never clamps or loops.
type Sequence struct {
	Name   string
	ID     SequenceID
	Length float64
	Tracks []*Track
}

// NewSequence creates an empty root sequence.
func NewSequence(name string, length float64) *Sequence {
	return &Sequence{Name: name, ID: RootSequenceID, Length: length}
}

// AddTrack appends a track bound to binding within this sequence. A zero
// binding is replaced with one derived from the track name.
func (s *Sequence) AddTrack(name string, binding uuid.UUID) *Track {
	if binding == uuid.Nil {
		binding = BindingFromName(name)
	}
	t := &Track{
		Name:    name,
		Operand: Operand{Sequence: s.ID, Binding: binding},
	}
	s.Tracks = append(s.Tracks, t)
	return t
}

// Track returns the first track named name, or nil.
func (s *Sequence) Track(name string) *Track {
	for _, t := range s.Tracks {
		if t.Name == name {
			return t
		}
	}
	return nil
}
