package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/heath"
	"github.com/etnz/heath/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers the shell when heath is run for completion, and exits.
// It returns right away otherwise.
//
// The completion is installed in the user shell with
//
//	COMP_INSTALL=1 heath
func Complete(c *subcommands.Commander, name string) {
	completion(c).Complete(name)
}

// completion describes the commands of c, their flags and their arguments.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"f": predict.Dirs("*"),
			"v": predict.Nothing,
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Nothing
			if !isBoolFlag(f) {
				sub.Flags[f.Name] = predict.Something
			}
		})
		sub.Args = argsPredictor(cmd.Name())
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// argsPredictor predicts the positional arguments of the command name.
func argsPredictor(name string) complete.Predictor {
	switch name {
	case "start", "switch":
		return complete.PredictFunc(func(prefix string) []string { return projectKeys(prefix, false) })
	case "allday":
		return complete.PredictFunc(func(prefix string) []string { return projectKeys(prefix, true) })
	case "topic":
		return complete.PredictFunc(func(prefix string) []string {
			topics, err := docs.Names()
			if err != nil {
				return nil
			}
			return topics
		})
	default:
		return predict.Nothing
	}
}

// projectKeys returns the keys of the projects starting with prefix, either
// the timed ones or the all-day ones. Errors yield no prediction.
func projectKeys(prefix string, allDay bool) []string {
	text, err := os.ReadFile(filepath.Join(FolderPath(), heath.ProjectsFile))
	if err != nil {
		return nil
	}
	projects, err := heath.ParseProjects(string(text))
	if err != nil {
		return nil
	}
	var keys []string
	for _, p := range projects {
		if p.AllDay == allDay && strings.HasPrefix(p.Key, prefix) {
			keys = append(keys, p.Key)
		}
	}
	return keys
}
