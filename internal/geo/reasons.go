package geo

// Guidance is the user-facing message for a failed lookup: what happened and
// what the user can do about it.
type Guidance struct {
	Message string `json:"message"`
	Action  string `json:"action"`
}

// reasonGuidance maps each failure reason to its user-facing instruction.
// Unhappy lookups are normal outcomes here, not faults, so every reason has
// a non-alarming message.
var reasonGuidance = map[Reason]Guidance{
	ReasonUnsupported: {
		Message: "Location lookup is not available",
		Action:  "Pick your store from the list instead",
	},
	ReasonPermissionDenied: {
		Message: "Location access is blocked",
		Action:  "Enable location permission for this site and try again",
	},
	ReasonTimeout: {
		Message: "Finding your location took too long",
		Action:  "Try again, or pick your store from the list",
	},
	ReasonUnavailable: {
		Message: "We could not determine your location",
		Action:  "Pick your store from the list instead",
	},
	ReasonNoMatch: {
		Message: "No store matched your location",
		Action:  "Pick your store from the list instead",
	},
}

// Guide returns the user-facing guidance for a reason. Unknown reasons get
// the generic unavailable guidance.
func Guide(reason Reason) Guidance {
	if g, ok := reasonGuidance[reason]; ok {
		return g
	}
	return reasonGuidance[ReasonUnavailable]
}
