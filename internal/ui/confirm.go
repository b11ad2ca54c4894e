package ui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"trr/internal/ports"
)

// HuhConfirmer implements ports.Confirmer with a huh confirm field.
// The default answer is No, so anything short of explicitly choosing
// Yes declines.
type HuhConfirmer struct{}

// Compile-time interface verification
var _ ports.Confirmer = (*HuhConfirmer)(nil)

// NewHuhConfirmer creates a HuhConfirmer
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{}
}

// Confirm asks a yes/no question and returns the answer
func (c *HuhConfirmer) Confirm(title, description string) (bool, error) {
	confirmed := false
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
