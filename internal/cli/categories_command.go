package cli

import "context"

// CategoriesCommand lists the distinct categories in list order
type CategoriesCommand struct {
	app *App
}

// NewCategoriesCommand creates a new categories command handler
func NewCategoriesCommand(app *App) *CategoriesCommand {
	return &CategoriesCommand{app: app}
}

// Execute runs the command
func (c *CategoriesCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.loadBoard(ctx)
	if err != nil {
		return err
	}

	categories := board.Categories()
	if len(categories) == 0 {
		c.app.printf("No categories\n")
		return nil
	}
	for _, category := range categories {
		c.app.printf("%s\n", category)
	}
	return nil
}
