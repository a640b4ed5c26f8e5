package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized rooted storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Log your first entry with 'rooted add'.")
	return nil
}
