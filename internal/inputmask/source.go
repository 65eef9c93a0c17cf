package inputmask

// source is where the raw value lives. The variant is picked once in New and
// never changes: an uncontrolled input owns its value, a controlled one
// mirrors the value its owner feeds in through SetValue.
type source interface {
	// raw is the value to display.
	raw() string
	// accept records a value produced by user input.
	accept(raw string) source
	controlled() bool
}

// ownedSource is the uncontrolled variant. Accepted input becomes the value.
type ownedSource struct {
	value string
}

func (s ownedSource) raw() string              { return s.value }
func (s ownedSource) accept(raw string) source { return ownedSource{value: raw} }
func (s ownedSource) controlled() bool         { return false }

// externalSource is the controlled variant. Accepted input is shown as an
// optimistic echo until the owner calls SetValue, which replaces both.
type externalSource struct {
	value   string
	echo    string
	echoing bool
}

func (s externalSource) raw() string {
	if s.echoing {
		return s.echo
	}
	return s.value
}

func (s externalSource) accept(raw string) source {
	return externalSource{value: s.value, echo: raw, echoing: true}
}

func (s externalSource) controlled() bool { return true }
