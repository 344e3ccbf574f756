package messages

import "github.com/zacjones93/script-kit-next-sub004/pkg/kit/ident"

// AssignSemanticIDs fills the semantic id of every choice that does
// not have one yet. IDs are positional ("choice:3:red-apple") so a
// list with duplicate names still gets unique addresses, and already
// assigned ids are left alone so they stay stable for the lifetime of
// the rendered list.
func AssignSemanticIDs(choices []Choice) {
	for i := range choices {
		if choices[i].SemanticID == "" {
			choices[i].SemanticID = ident.MakeID("choice", i, choices[i].Name)
		}
	}
}

// AssignActionIDs fills missing semantic ids on actions. Actions are
// addressed by name rather than position because their order is
// presentational.
func AssignActionIDs(actions []ProtocolAction) {
	for i := range actions {
		if actions[i].SemanticID == "" {
			actions[i].SemanticID = ident.MakeNamedID("action", actions[i].Name)
		}
	}
}
