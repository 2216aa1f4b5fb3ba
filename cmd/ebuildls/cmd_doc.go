package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ogiekako/ebuildls/ebuild/eclassdoc"
	"github.com/ogiekako/ebuildls/project"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc [eclass] [name]",
		Short: "Show documentation for an eclass, variable, or function",
		Long: `Show documentation extracted from an eclass header.

The eclass is located through the checkout containing the working
directory, searching the same directories the language server searches.

With a second argument, shows only the named variable or function.
With no arguments, lists every eclass found in the checkout.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			checkout, err := project.Load()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return listEclasses(checkout)
			}
			doc, err := loadEclassDoc(checkout, args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return printMemberDoc(doc, args[1])
			}
			printEclassDoc(doc)
			return nil
		},
	}
	return cmd
}

func loadEclassDoc(checkout *project.Checkout, name string) (*eclassdoc.Doc, error) {
	name = strings.TrimSuffix(name, ".eclass")
	path, ok := checkout.EclassPath(name, "")
	if !ok {
		return nil, fmt.Errorf("eclass %s not found in %s", name, checkout.Root)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read eclass: %w", err)
	}
	return eclassdoc.Parse(data), nil
}

func listEclasses(checkout *project.Checkout) error {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range checkout.EclassDirs("") {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := strings.TrimSuffix(entry.Name(), ".eclass")
			if name == entry.Name() || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no eclasses found in %s", checkout.Root)
	}

	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func printEclassDoc(d *eclassdoc.Doc) {
	if d.Blurb != "" {
		fmt.Printf("%s - %s\n", d.Name, d.Blurb)
	} else {
		fmt.Println(d.Name)
	}
	if d.Deprecated != "" {
		fmt.Printf("Deprecated, use %s instead.\n", d.Deprecated)
	}
	if d.Maintainer != "" {
		fmt.Printf("Maintainer: %s\n", firstLine(d.Maintainer))
	}
	if d.SupportedEAPIs != "" {
		fmt.Printf("Supported EAPIs: %s\n", d.SupportedEAPIs)
	}
	if d.Description != "" {
		fmt.Println()
		fmt.Println(d.Description)
	}

	if vars := publicVariables(d.Variables); len(vars) > 0 {
		fmt.Println("\nVariables:")
		for _, v := range vars {
			fmt.Printf("    %s\n", v.Name)
		}
	}

	if funcs := publicFunctions(d.Functions); len(funcs) > 0 {
		fmt.Println("\nFunctions:")
		for _, f := range funcs {
			fmt.Printf("    %s\n", f.Name)
		}
	}
}

func printMemberDoc(d *eclassdoc.Doc, name string) error {
	if v, ok := d.Variable(name); ok {
		printVariableDoc(v)
		return nil
	}
	if f, ok := d.Function(name); ok {
		printFunctionDoc(f)
		return nil
	}
	return fmt.Errorf("%s is not documented in %s", name, d.Name)
}

func printVariableDoc(v *eclassdoc.VariableDoc) {
	fmt.Println(v.Name)
	var notes []string
	if v.Required {
		notes = append(notes, "required")
	}
	if v.DefaultUnset {
		notes = append(notes, "unset by default")
	}
	if v.PreInherit {
		notes = append(notes, "must be set before the inherit")
	}
	if v.Internal {
		notes = append(notes, "internal")
	}
	if len(notes) > 0 {
		fmt.Printf("(%s)\n", strings.Join(notes, ", "))
	}
	if v.Description != "" {
		fmt.Println()
		fmt.Println(v.Description)
	}
}

func printFunctionDoc(f *eclassdoc.FunctionDoc) {
	if f.Usage != "" {
		fmt.Printf("%s %s\n", f.Name, f.Usage)
	} else {
		fmt.Println(f.Name)
	}
	if f.Deprecated != "" {
		fmt.Printf("Deprecated, use %s instead.\n", f.Deprecated)
	}
	if f.Description != "" {
		fmt.Println()
		fmt.Println(f.Description)
	}
	if f.Return != "" {
		fmt.Printf("\nReturns: %s\n", f.Return)
	}
}

func publicVariables(vars []*eclassdoc.VariableDoc) []*eclassdoc.VariableDoc {
	var result []*eclassdoc.VariableDoc
	for _, v := range vars {
		if !v.Internal {
			result = append(result, v)
		}
	}
	return result
}

func publicFunctions(funcs []*eclassdoc.FunctionDoc) []*eclassdoc.FunctionDoc {
	var result []*eclassdoc.FunctionDoc
	for _, f := range funcs {
		if !f.Internal {
			result = append(result, f)
		}
	}
	return result
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
