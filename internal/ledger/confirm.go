package ledger

// Confirmation is the prompt shown before a destructive action fires.
// There is no undo once it is accepted.
type Confirmation struct {
	Title   string
	Message string
}

var (
	ConfirmDeleteCard = Confirmation{
		Title:   "Delete card",
		Message: "Are you sure you want to delete this card?",
	}
	ConfirmDeleteTransaction = Confirmation{
		Title:   "Delete transaction",
		Message: "Are you sure you want to delete this transaction?",
	}
	ConfirmDeleteSubscription = Confirmation{
		Title:   "Delete subscription",
		Message: "Are you sure you want to delete this subscription?",
	}
)

// ConfirmDiscardChanges is asked before closing a dirty edit form.
func ConfirmDiscardChanges(entity string) Confirmation {
	return Confirmation{
		Title:   "Discard changes?",
		Message: "You have unsaved changes to this " + entity + ". Are you sure you want to close?",
	}
}
