package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/KareemErgawy/al-farahidi/grammar"
)

func makeJson(gr *grammar.Grammar) ([]byte, error) {
	return json.MarshalIndent(gr, "", "  ")
}

func makeGo(gr *grammar.Grammar) ([]byte, error) {
	if packageName == "" {
		dir, e := filepath.Abs(outFileName)
		if e != nil {
			return nil, e
		}

		dir, _ = filepath.Split(dir)
		_, packageName = filepath.Split(dir[:len(dir)-1])
	}
	if varName == "" && len(gr.Nonterms) > 0 {
		varName = gr.Nonterms[0].Name
	}

	re := regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")
	if !re.MatchString(packageName) {
		return nil, fmt.Errorf("invalid package name: %s", packageName)
	}
	if !re.MatchString(varName) {
		return nil, fmt.Errorf("invalid variable name: %s", varName)
	}

	var buffer bytes.Buffer

	buffer.WriteString("// Code generated with farahidi.\n\n" +
		"package " + packageName + "\n\n" +
		"import \"github.com/KareemErgawy/al-farahidi/grammar\"\n\n" +
		"var " + varName + " = &grammar.Grammar{\n")

	buffer.WriteString("\tNonterms: []grammar.Nonterm{\n")
	for _, nt := range gr.Nonterms {
		buffer.WriteString(fmt.Sprintf("\t\t{Name: %q, Index: %d, Complete: %v, Body: %d},\n",
			nt.Name, nt.Index, nt.Complete, nt.Body))
	}
	buffer.WriteString("\t},\n")

	bodyRoots := make(map[int]string, len(gr.Nonterms))
	for _, nt := range gr.Nonterms {
		if nt.Complete {
			bodyRoots[nt.Body] = nt.Name
		}
	}

	buffer.WriteString("\tExprs: []grammar.Expr{\n")
	for i, x := range gr.Exprs {
		buffer.WriteString(fmt.Sprintf("\t\t{%d, grammar.Operand{%d, %d}, grammar.Operand{%d, %d}},",
			x.Op, x.Left.Kind, x.Left.Ref, x.Right.Kind, x.Right.Ref))
		if name, has := bodyRoots[i]; has {
			buffer.WriteString(fmt.Sprintf(" // %s(%d)", name, i))
		}
		buffer.WriteString("\n")
	}
	buffer.WriteString("\t},\n")

	buffer.WriteString(fmt.Sprintf("\tTerms: []byte(%q),\n", gr.Terms))
	buffer.WriteString("}\n")
	return buffer.Bytes(), nil
}
