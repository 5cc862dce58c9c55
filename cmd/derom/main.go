// Command derom decodes a romanized word into weighted original-script
// candidates using a compiled profile.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/unroman/keyengine/profileyaml"
	deromanize "github.com/unroman/keyengine"
)

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintf(os.Stderr, "derom: %v\n", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("derom")
	var (
		profilePath = fs.StringLong("profile", "", "path to a profile YAML file")
		key         = fs.StringLong("key", "", "decode with a single named key instead of front/mid/end")
		word        = fs.StringLong("word", "", "romanized word to decode")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("DEROM")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *profilePath == "" {
		return errors.New("-profile is required")
	}
	if *word == "" {
		return errors.New("-word is required")
	}

	doc, err := profileyaml.LoadFile(*profilePath)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	engine, err := deromanize.Build(doc)
	if err != nil {
		return fmt.Errorf("compiling profile: %w", err)
	}

	var result deromanize.ReplacementList
	if *key != "" {
		k, err := engine.Key(*key)
		if err != nil {
			return err
		}
		result, _, err = k.GetPart(*word)
		if err != nil {
			return err
		}
	} else {
		result, err = engine.FrontMidEnd(*word)
		if err != nil {
			return err
		}
	}

	result.Sort()
	candidates := append([]deromanize.Replacement{}, result.Candidates...)
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Weight < candidates[j].Weight })
	for _, c := range candidates {
		fmt.Printf("%3d  %s\n", c.Weight, c.Value)
	}
	return nil
}
