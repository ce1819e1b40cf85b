package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/heath/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `heath topic [<topic>...]

  Shows the documentation of the given topics, the list of topics by default.
  The topic "*" shows every topic.

Usage Examples:
$ heath topic formats
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}

	doc, err := docs.Topics(topics...)
	if err != nil {
		if names, nerr := docs.Names(); nerr == nil {
			err = fmt.Errorf("%w, topics are: %s", err, strings.Join(names, ", "))
		}
		return usage(err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
