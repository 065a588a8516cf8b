package models

// ValidationError carries a user-facing message for a rejected request field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
