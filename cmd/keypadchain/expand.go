package main

import (
	"fmt"
)

// ExpandCommand holds the flags of `keypadchain expand`.
type ExpandCommand struct {
	Depth int `short:"d" long:"depth" description:"directional arms between the numeric arm and the human; negative keeps the configured depth" default:"-1"`

	Args struct {
		Code string `positional-arg-name:"code" description:"code to type on the numeric keypad"`
	} `positional-args:"yes" required:"yes"`
}

// Execute prints one minimal press sequence for the code and its length.
func (c *ExpandCommand) Execute(args []string) error {
	e, err := setup(c.Depth, false)
	if err != nil {
		return err
	}
	defer e.closer.Close()

	presses, err := e.agg.Expand(c.Args.Code, e.cfg.Depth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n%d\n", presses, len(presses))
	return err
}
