package messages

// Prompt events flow host to script, reporting what the user did with
// an open prompt. Each carries the prompt's id so a script juggling
// several prompts can route them.

// Submit delivers the value the user submitted. For select prompts
// this is the chosen choice's value; for text prompts the typed
// string; for multi-select a JSON array.
type Submit struct {
	PromptRef
	Value JSONValue `json:"value"`
}

func (*Submit) message() {}

// Type returns the wire discriminator.
func (*Submit) Type() string { return TypeSubmit }

// NewSubmit builds a submit event for the prompt.
func NewSubmit(promptID string, value JSONValue) *Submit {
	return &Submit{PromptRef: PromptRef{ID: promptID}, Value: value}
}

// Input streams the current text as the user types.
type Input struct {
	PromptRef
	Input string `json:"input"`
}

func (*Input) message() {}

// Type returns the wire discriminator.
func (*Input) Type() string { return TypeInput }

// NewInput builds an input event carrying the prompt's current text.
func NewInput(promptID, input string) *Input {
	return &Input{PromptRef: PromptRef{ID: promptID}, Input: input}
}

// ChoiceFocused reports the choice under the cursor, addressed by
// semantic id and list position.
type ChoiceFocused struct {
	PromptRef
	ChoiceID string `json:"choiceId,omitempty"`
	Index    int    `json:"index,omitempty"`
}

func (*ChoiceFocused) message() {}

// Type returns the wire discriminator.
func (*ChoiceFocused) Type() string { return TypeChoiceFocused }

// NewChoiceFocused builds a focus event for the choice at index.
func NewChoiceFocused(promptID, choiceID string, index int) *ChoiceFocused {
	return &ChoiceFocused{PromptRef: PromptRef{ID: promptID}, ChoiceID: choiceID, Index: index}
}

// ActionTriggered reports that the user fired an action whose
// hasAction flag routed it back to the script instead of submitting.
type ActionTriggered struct {
	PromptRef
	ActionID string    `json:"actionId,omitempty"`
	Name     string    `json:"name"`
	Value    JSONValue `json:"value,omitempty"`
}

func (*ActionTriggered) message() {}

// Type returns the wire discriminator.
func (*ActionTriggered) Type() string { return TypeActionTriggered }

// NewActionTriggered builds a trigger event for a routed action.
func NewActionTriggered(promptID, actionID, name string) *ActionTriggered {
	return &ActionTriggered{PromptRef: PromptRef{ID: promptID}, ActionID: actionID, Name: name}
}

// Escape reports that the user dismissed the prompt.
type Escape struct {
	PromptRef
}

func (*Escape) message() {}

// Type returns the wire discriminator.
func (*Escape) Type() string { return TypeEscape }

// NewEscape builds an escape event for the prompt.
func NewEscape(promptID string) *Escape {
	return &Escape{PromptRef: PromptRef{ID: promptID}}
}

// Abandon reports that the host discarded the prompt without user
// input, for example because another script took over the display.
type Abandon struct {
	PromptRef
}

func (*Abandon) message() {}

// Type returns the wire discriminator.
func (*Abandon) Type() string { return TypeAbandon }

// NewAbandon builds an abandon event for the prompt.
func NewAbandon(promptID string) *Abandon {
	return &Abandon{PromptRef: PromptRef{ID: promptID}}
}
