package cmd

import (
	"github.com/pterm/pterm"

	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/ui/views"
)

// submitInteractive runs one form pass: prompt, decide, render.
func submitInteractive(prompt func() (model.Submission, error)) error {
	sub, err := prompt()
	if err != nil {
		return err
	}
	return submitAndRender(sub)
}

func submitAndRender(sub model.Submission) error {
	decision, err := application.Service.Payment.Submit(sub)
	if err != nil {
		// The decision stands even when the journal write failed.
		pterm.Warning.Printf("Protokollierung fehlgeschlagen: %v\n", err)
	}

	return views.RenderDecision(sub.Kind, decision)
}
