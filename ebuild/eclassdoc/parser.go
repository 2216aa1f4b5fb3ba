package eclassdoc

import "strings"

// Parse extracts the documentation blocks of an eclass source. The
// format is line oriented: tags live on comment lines as "# @TAG:" or
// "# @TAG: value", and a multi-line value runs until the next tag or
// the first non-comment line. Unknown tags are skipped. Parse never
// fails; an undocumented eclass yields an empty Doc.
func Parse(src []byte) *Doc {
	doc := &Doc{}
	var (
		curVar   *VariableDoc
		curFn    *FunctionDoc
		appendTo *string
	)

	for _, line := range strings.Split(string(src), "\n") {
		if !strings.HasPrefix(line, "#") {
			curVar, curFn, appendTo = nil, nil, nil
			continue
		}
		text := strings.TrimPrefix(line, "#")
		text = strings.TrimPrefix(text, " ")

		tag, value, ok := splitTag(text)
		if !ok {
			if appendTo != nil {
				appendLine(appendTo, text)
			}
			continue
		}

		appendTo = nil
		switch tag {
		case "ECLASS":
			doc.Name = value
		case "ECLASS_VARIABLE", "ECLASS-VARIABLE":
			curVar, curFn = &VariableDoc{Name: value}, nil
			doc.Variables = append(doc.Variables, curVar)
		case "FUNCTION":
			curFn, curVar = &FunctionDoc{Name: value}, nil
			doc.Functions = append(doc.Functions, curFn)
		case "DESCRIPTION":
			switch {
			case curVar != nil:
				appendTo = &curVar.Description
			case curFn != nil:
				appendTo = &curFn.Description
			default:
				appendTo = &doc.Description
			}
			if value != "" {
				appendLine(appendTo, value)
			}
		case "MAINTAINER":
			if curVar == nil && curFn == nil {
				appendTo = &doc.Maintainer
				if value != "" {
					appendLine(appendTo, value)
				}
			}
		case "AUTHOR":
			if curVar == nil && curFn == nil {
				appendTo = &doc.Author
				if value != "" {
					appendLine(appendTo, value)
				}
			}
		case "BLURB":
			doc.Blurb = value
		case "DEPRECATED":
			if curFn != nil {
				curFn.Deprecated = value
			} else {
				doc.Deprecated = value
			}
		case "SUPPORTED_EAPIS":
			doc.SupportedEAPIs = value
		case "VCSURL":
			doc.VCSURL = value
		case "USAGE":
			if curFn != nil {
				curFn.Usage = value
			}
		case "RETURN":
			if curFn != nil {
				curFn.Return = value
			}
		case "INTERNAL":
			if curVar != nil {
				curVar.Internal = true
			} else if curFn != nil {
				curFn.Internal = true
			}
		case "REQUIRED":
			if curVar != nil {
				curVar.Required = true
			}
		case "DEFAULT_UNSET":
			if curVar != nil {
				curVar.DefaultUnset = true
			}
		case "PRE_INHERIT":
			if curVar != nil {
				curVar.PreInherit = true
			}
		case "USER_VARIABLE":
			if curVar != nil {
				curVar.UserVariable = true
			}
		case "OUTPUT_VARIABLE":
			if curVar != nil {
				curVar.OutputVariable = true
			}
		}
	}
	return doc
}

func splitTag(text string) (tag, value string, ok bool) {
	if !strings.HasPrefix(text, "@") {
		return "", "", false
	}
	rest := text[1:]
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		return rest[:i], strings.TrimSpace(rest[i+1:]), true
	}
	return strings.TrimSpace(rest), "", true
}

func appendLine(s *string, line string) {
	if *s != "" {
		*s += "\n"
	}
	*s += strings.TrimRight(line, " \t")
}
