package main

import (
	"fmt"
	"io"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.vm.stack)
	dump.dumpFrames()
	dump.dumpDict()
}

// dumpFrames lists frames top first, along with their remaining words.
func (dump vmDumper) dumpFrames() {
	if len(dump.vm.frames) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Frames\n")
	for i := len(dump.vm.frames) - 1; i >= 0; i-- {
		fr := dump.vm.frames[i]
		fmt.Fprintf(dump.out, "  [%v] %v: %v\n", i, fr.label, strings.Join(fr.toks.Words(), " "))
	}
}

func (dump vmDumper) dumpDict() {
	if dump.vm.dict.len() == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Dictionary\n")
	var sb strings.Builder
	dump.vm.dict.each(func(name string, body []string) bool {
		sb.Reset()
		sb.WriteString("  : ")
		sb.WriteString(name)
		for _, word := range body {
			sb.WriteByte(' ')
			sb.WriteString(word)
		}
		sb.WriteString(" ;\n")
		io.WriteString(dump.out, sb.String())
		return true
	})
}
