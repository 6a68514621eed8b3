package language

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// interpreter extracts the interpreter name from a "#!" first line.
// "#!/usr/bin/env -S node --flag" yields "node".
func interpreter(content []byte) (string, bool) {
	if !bytes.HasPrefix(content, []byte("#!")) {
		return "", false
	}
	line := content[2:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	words, err := shellquote.Split(strings.TrimSpace(string(line)))
	if err != nil || len(words) == 0 {
		return "", false
	}

	interp := filepath.Base(words[0])
	if interp != "env" {
		return interp, true
	}

	for _, w := range words[1:] {
		if strings.HasPrefix(w, "-") || strings.Contains(w, "=") {
			continue
		}
		return filepath.Base(w), true
	}
	return "", false
}
