package world

// Flags is the global, singleton game state mutated only by the simulation.
type Flags struct {
	Holding        ItemKind
	ShowHelp       bool
	ShowTransition bool
	Messages       []string
	ShowTerminal   bool
	MessageIndex   int
	MessageRead    bool
	ClearScreen    bool
}

// NewFlags returns the initial game flags: help visible, the startup
// transition playing, and the message sequence at its first stage.
func NewFlags(messages []string) Flags {
	return Flags{
		Holding:        ItemNone,
		ShowHelp:       true,
		ShowTransition: true,
		Messages:       messages,
	}
}

// AdvanceMessage moves the narrative to the next stage and clears the read
// flag. The index only ever increases.
func (f *Flags) AdvanceMessage() {
	f.MessageIndex++
	f.MessageRead = false
}

// CurrentMessage returns the message for the current stage, or an empty
// string past the end of the sequence.
func (f *Flags) CurrentMessage() string {
	if f.MessageIndex >= len(f.Messages) {
		return ""
	}
	return f.Messages[f.MessageIndex]
}

// Completed reports whether the narrative has reached its final message.
func (f *Flags) Completed() bool {
	return len(f.Messages) > 0 && f.MessageIndex >= len(f.Messages)-1
}
