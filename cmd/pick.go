package cmd

import (
	"fmt"

	huh "charm.land/huh/v2"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/ui"
)

// pickOptions lists the collection as select options, in order.
func pickOptions(coll *document.Collection) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, coll.Len())
	for i, e := range coll.Entries() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", i+1, e.Name), e.ID))
	}
	return opts
}

// pick asks which document to show first, starting on current.
func pick(coll *document.Collection, current string) (string, error) {
	selected := coll.Resolve(current).ID
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Open document").
				Options(pickOptions(coll)...).
				Value(&selected),
		),
	).WithTheme(ui.FormTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}
