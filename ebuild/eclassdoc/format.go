package eclassdoc

import "strings"

// Format renders the file-level documentation of an eclass as
// markdown for hover popups.
func Format(d *Doc) string {
	var sb strings.Builder
	switch {
	case d.Name != "" && d.Blurb != "":
		sb.WriteString("**" + d.Name + "**: " + d.Blurb + "\n")
	case d.Name != "":
		sb.WriteString("**" + d.Name + "**\n")
	case d.Blurb != "":
		sb.WriteString(d.Blurb + "\n")
	}
	if d.Deprecated != "" {
		sb.WriteString("\n**Deprecated**, use " + d.Deprecated + " instead.\n")
	}
	if d.Description != "" {
		sb.WriteString("\n" + d.Description + "\n")
	}
	return strings.TrimSpace(sb.String())
}

// FormatVariable renders one variable block as markdown.
func FormatVariable(d *Doc, v *VariableDoc) string {
	var sb strings.Builder
	sb.WriteString("**" + v.Name + "**")
	if d.Name != "" {
		sb.WriteString(" (" + d.Name + ")")
	}
	sb.WriteString("\n")
	if v.Description != "" {
		sb.WriteString("\n" + v.Description + "\n")
	}
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
		sb.WriteString("\n*" + strings.Join(notes, ", ") + "*\n")
	}
	return strings.TrimSpace(sb.String())
}

// FormatFunction renders one function block as markdown.
func FormatFunction(d *Doc, f *FunctionDoc) string {
	var sb strings.Builder
	sb.WriteString("**" + f.Name + "**")
	if d.Name != "" {
		sb.WriteString(" (" + d.Name + ")")
	}
	sb.WriteString("\n")
	if f.Usage != "" {
		sb.WriteString("\n`" + f.Name + " " + f.Usage + "`\n")
	}
	if f.Deprecated != "" {
		sb.WriteString("\n**Deprecated**, use " + f.Deprecated + " instead.\n")
	}
	if f.Description != "" {
		sb.WriteString("\n" + f.Description + "\n")
	}
	if f.Return != "" {
		sb.WriteString("\nReturns: " + f.Return + "\n")
	}
	return strings.TrimSpace(sb.String())
}
