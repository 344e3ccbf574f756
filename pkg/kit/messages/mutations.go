package messages

// Prompt mutations adjust an already-open prompt in place. Each
// carries the prompt's id and exactly one piece of replacement state;
// the host applies it to whichever prompt the id names and ignores
// mutations for prompts that no longer exist.

// SetChoices replaces the prompt's choice list. An empty list clears
// it.
type SetChoices struct {
	PromptRef
	Choices []Choice `json:"choices"`
}

func (*SetChoices) message() {}

// Type returns the wire discriminator.
func (*SetChoices) Type() string { return TypeSetChoices }

// NewSetChoices builds a choice-list replacement for the prompt.
func NewSetChoices(promptID string, choices []Choice) *SetChoices {
	return &SetChoices{PromptRef: PromptRef{ID: promptID}, Choices: choices}
}

// SetActions replaces the prompt's action list.
type SetActions struct {
	PromptRef
	Actions []ProtocolAction `json:"actions"`
}

func (*SetActions) message() {}

// Type returns the wire discriminator.
func (*SetActions) Type() string { return TypeSetActions }

// NewSetActions builds an action-list replacement for the prompt.
func NewSetActions(promptID string, actions []ProtocolAction) *SetActions {
	return &SetActions{PromptRef: PromptRef{ID: promptID}, Actions: actions}
}

// SetInput overwrites the text in the prompt's input box.
type SetInput struct {
	PromptRef
	Input string `json:"input"`
}

func (*SetInput) message() {}

// Type returns the wire discriminator.
func (*SetInput) Type() string { return TypeSetInput }

// NewSetInput builds an input replacement for the prompt.
func NewSetInput(promptID, input string) *SetInput {
	return &SetInput{PromptRef: PromptRef{ID: promptID}, Input: input}
}

// SetPlaceholder replaces the prompt's placeholder text.
type SetPlaceholder struct {
	PromptRef
	Placeholder string `json:"placeholder"`
}

func (*SetPlaceholder) message() {}

// Type returns the wire discriminator.
func (*SetPlaceholder) Type() string { return TypeSetPlaceholder }

// NewSetPlaceholder builds a placeholder replacement for the prompt.
func NewSetPlaceholder(promptID, placeholder string) *SetPlaceholder {
	return &SetPlaceholder{PromptRef: PromptRef{ID: promptID}, Placeholder: placeholder}
}

// SetHint replaces the hint line under the input.
type SetHint struct {
	PromptRef
	Hint string `json:"hint"`
}

func (*SetHint) message() {}

// Type returns the wire discriminator.
func (*SetHint) Type() string { return TypeSetHint }

// NewSetHint builds a hint replacement for the prompt.
func NewSetHint(promptID, hint string) *SetHint {
	return &SetHint{PromptRef: PromptRef{ID: promptID}, Hint: hint}
}

// SetPanel replaces the prompt's HTML panel.
type SetPanel struct {
	PromptRef
	HTML string `json:"html"`
}

func (*SetPanel) message() {}

// Type returns the wire discriminator.
func (*SetPanel) Type() string { return TypeSetPanel }

// NewSetPanel builds a panel replacement for the prompt.
func NewSetPanel(promptID, html string) *SetPanel {
	return &SetPanel{PromptRef: PromptRef{ID: promptID}, HTML: html}
}

// SetPreview replaces the preview pane next to the choice list.
type SetPreview struct {
	PromptRef
	HTML string `json:"html"`
}

func (*SetPreview) message() {}

// Type returns the wire discriminator.
func (*SetPreview) Type() string { return TypeSetPreview }

// NewSetPreview builds a preview replacement for the prompt.
func NewSetPreview(promptID, html string) *SetPreview {
	return &SetPreview{PromptRef: PromptRef{ID: promptID}, HTML: html}
}

// SetFooter replaces the footer text.
type SetFooter struct {
	PromptRef
	Footer string `json:"footer"`
}

func (*SetFooter) message() {}

// Type returns the wire discriminator.
func (*SetFooter) Type() string { return TypeSetFooter }

// NewSetFooter builds a footer replacement for the prompt.
func NewSetFooter(promptID, footer string) *SetFooter {
	return &SetFooter{PromptRef: PromptRef{ID: promptID}, Footer: footer}
}

// SetName replaces the prompt's title.
type SetName struct {
	PromptRef
	Name string `json:"name"`
}

func (*SetName) message() {}

// Type returns the wire discriminator.
func (*SetName) Type() string { return TypeSetName }

// NewSetName builds a title replacement for the prompt.
func NewSetName(promptID, name string) *SetName {
	return &SetName{PromptRef: PromptRef{ID: promptID}, Name: name}
}

// SetDescription replaces the prompt's subtitle.
type SetDescription struct {
	PromptRef
	Description string `json:"description"`
}

func (*SetDescription) message() {}

// Type returns the wire discriminator.
func (*SetDescription) Type() string { return TypeSetDescription }

// NewSetDescription builds a subtitle replacement for the prompt.
func NewSetDescription(promptID, description string) *SetDescription {
	return &SetDescription{PromptRef: PromptRef{ID: promptID}, Description: description}
}

// SetProgress moves the prompt's progress bar. Range is 0 to 100; a
// negative value hides the bar.
type SetProgress struct {
	PromptRef
	Progress int `json:"progress"`
}

func (*SetProgress) message() {}

// Type returns the wire discriminator.
func (*SetProgress) Type() string { return TypeSetProgress }

// NewSetProgress builds a progress update for the prompt.
func NewSetProgress(promptID string, progress int) *SetProgress {
	return &SetProgress{PromptRef: PromptRef{ID: promptID}, Progress: progress}
}

// SetEnter relabels the submit button.
type SetEnter struct {
	PromptRef
	Label string `json:"label"`
}

func (*SetEnter) message() {}

// Type returns the wire discriminator.
func (*SetEnter) Type() string { return TypeSetEnter }

// NewSetEnter builds a submit-label replacement for the prompt.
func NewSetEnter(promptID, label string) *SetEnter {
	return &SetEnter{PromptRef: PromptRef{ID: promptID}, Label: label}
}

// SetSelectedChoices marks choices as selected in a multi-select
// prompt, addressed by semantic id.
type SetSelectedChoices struct {
	PromptRef
	IDs []string `json:"ids"`
}

func (*SetSelectedChoices) message() {}

// Type returns the wire discriminator.
func (*SetSelectedChoices) Type() string { return TypeSetSelectedChoices }

// NewSetSelectedChoices builds a selection update for the prompt.
func NewSetSelectedChoices(promptID string, ids []string) *SetSelectedChoices {
	return &SetSelectedChoices{PromptRef: PromptRef{ID: promptID}, IDs: ids}
}
