package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
)

type TagsCmd struct{}

func (c *TagsCmd) Run(ctx *cli.Context) error {
	tags, err := ctx.Store.GetAllTags()
	if err != nil {
		return err
	}

	for _, t := range tags {
		if t.Prebuilt {
			fmt.Printf("%s %s\n", t.Name, cli.MutedStyle.Render("(built-in)"))
		} else {
			fmt.Println(t.Name)
		}
	}
	return nil
}
